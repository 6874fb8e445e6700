package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server",
		"-a", ":9090",
		"-d", "postgres://localhost/storserv",
		"-s", "topsecret",
		"-m", "other-param",
		"-t", "120",
		"-f", "kv",
		"-k", "kv-users",
		"-u", "root",
		"-p", "rootpw",
		"-g", "eu-west-1",
		"-e", "http://minio:9000/",
	}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "postgres://localhost/storserv", c.DatabaseDSN)
	assert.Equal(t, "topsecret", c.SecretKey)
	assert.Equal(t, "other-param", c.SecretParamName)
	assert.Equal(t, 120*time.Second, c.TokenValidity)
	assert.Equal(t, "kv", c.NamespacePrefix)
	assert.Equal(t, "kv-users", c.UsersBucket)
	assert.Equal(t, "root", c.S3RootUser)
	assert.Equal(t, "rootpw", c.S3RootPassword)
	assert.Equal(t, "eu-west-1", c.S3Region)
	assert.Equal(t, "http://minio:9000/", c.S3BaseEndpoint)
}

func TestParseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-a", ":9090"}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "storserv", c.NamespacePrefix)
	assert.Equal(t, 3600*time.Second, c.TokenValidity)
}
