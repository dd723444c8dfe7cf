package constants

import (
	"strings"

	"github.com/spf13/viper"
)

var v *viper.Viper

func init() {
	v = viper.New()
	v.SetDefault("data_path", "./data/ragas.csv")
	v.SetDefault("port", "8080")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("metadata_endpoint", "")
	v.SetDefault("metadata_table", "")
	v.SetDefault("metadata_region", "localhost")

	v.SetEnvPrefix("RAGADEX")
	v.AutomaticEnv()
}

// GetDataPath returns where the raga catalog CSV lives.
func GetDataPath() string {
	return v.GetString("data_path")
}

func GetPort() string {
	return v.GetString("port")
}

func GetCorsOrigins() []string {
	return strings.Split(v.GetString("cors_origins"), ",")
}

// Metadata table settings. An empty table name disables the DynamoDB
// lookup entirely.
func GetMetadataEndpoint() string {
	return v.GetString("metadata_endpoint")
}

func GetMetadataTable() string {
	return v.GetString("metadata_table")
}

func GetMetadataRegion() string {
	return v.GetString("metadata_region")
}
