package db

import (
	"crypto/tls"
	"fmt"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// laxTLSProfile is registered with the mysql driver when lax verification
// toward the store is requested (managed databases with self-signed certs).
const laxTLSProfile = "motohub-lax"

// NewMySQL returns a connected GORM DB instance. With skipVerify set, the DSN
// is rewritten to use a TLS profile that does not verify the server
// certificate.
func NewMySQL(dsn string, skipVerify bool) (*gorm.DB, error) {
	if skipVerify {
		if err := mysqldriver.RegisterTLSConfig(laxTLSProfile, &tls.Config{InsecureSkipVerify: true}); err != nil {
			return nil, fmt.Errorf("register tls profile: %w", err)
		}
		dsn = withTLSProfile(dsn, laxTLSProfile)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

func withTLSProfile(dsn, profile string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "tls=" + profile
}
