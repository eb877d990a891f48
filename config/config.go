package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	// Comma-separated domains for AutoTLS, e.g. "example.com,www.example.com"
	TLS_DOMAINS = ""
	// MySQL will be used if this is set
	MYSQL_DSN = ""
	// SQLite will be used if MYSQL_DSN is not configured
	SQLITE_FILE  = "yatube.db"
	BIND_ADDRESS = "0.0.0.0:8080"
	SESSION_KEY  = "change me in production"
	DEBUG_MODE   = true
	// Media storage. Disk is used unless S3_BUCKET is configured
	MEDIA_DIR = "media"
	S3_BUCKET = ""
	S3_REGION = "us-east-1"
	// Optional key prefix inside the S3 bucket
	S3_PREFIX = ""
	// Index page cache window, in seconds
	INDEX_CACHE_TIME = 20
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_PREFIX", &S3_PREFIX)
	readEnvInt("INDEX_CACHE_TIME", &INDEX_CACHE_TIME)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
