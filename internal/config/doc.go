// Package config provides configuration loading for the supply chain API.
//
// Configuration is read from environment variables with the SCPULSE_ prefix
// and, when present, merged with a YAML file. Environment variables win:
//
//	SCPULSE_SERVER_PORT=8000
//	SCPULSE_SECURITY_ALLOWED_ORIGINS=http://localhost:3000
//	SCPULSE_DATASOURCE_KIND=sheets
//	SCPULSE_DATASOURCE_SHEET_ID=1bRv...
//	SCPULSE_DATASOURCE_CREDENTIALS_FILE=/etc/secrets/google_sheets_key.json
//
// The YAML file is taken from SCPULSE_CONFIG_FILE, or config.yaml /
// configs/config.yaml in the working directory.
//
// The data source kind selects the loader strategy:
//
//	sheets  remote spreadsheet read with a service account (read-only scope)
//	csv     local delimited file
//	xlsx    local workbook
package config
