package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "client":
		return clientTemplate, nil
	case "gateway":
		return gatewayTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const clientTemplate = `platform = "DESKTOPWIN"
app_version = ""
language = "zh-Hant_TW"
timeout_ms = 30000
credentials_file = "credentials.toml"
`

const gatewayTemplate = `name = "stubgw"
addr = ":8111"
cors_origins = ["http://localhost:3000"]
auth_token = ""
next_access = ""

[[fixtures]]
path = "/S3"
status = 200
hex = "00"

[[fixtures]]
path = "/CH3"
status = 200
file = "fixtures/ch3.bin"
gzip = true
`
