package config

import (
	"errors"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/Cloud-Pie/EFT/internal/util"
)

//Struct that models the MongoDB database where the run history is kept
type Storage struct {
	Enabled  bool   `yaml:"enabled"`
	Server   string `yaml:"server"`
	Database string `yaml:"database"`
}

//Struct that models the system configuration of the transformer
//Input and output files are fixed and cannot be configured
//An empty log file means logging to stdout only
type SystemConfiguration struct {
	LogFile         string  `yaml:"log-file"`
	LogLevel        string  `yaml:"log-level"`
	Seed            int64   `yaml:"seed"`
	HttpPort        string  `yaml:"http-port"`
	MaxRequestBytes int64   `yaml:"max-request-bytes"`
	Storage         Storage `yaml:"storage"`
}

//Configuration used when no configuration file is present
func DefaultConfiguration() SystemConfiguration {
	return SystemConfiguration{
		LogLevel:        util.DEFAULT_LOG_LEVEL,
		HttpPort:        util.DEFAULT_HTTP_PORT,
		MaxRequestBytes: util.DEFAULT_MAX_REQUEST_BYTES,
		Storage: Storage{
			Server:   util.DEFAULT_DB_SERVER_RUNS,
			Database: util.DEFAULT_DB_RUNS,
		},
	}
}

//Method that parses the configuration file into a struct type.
//Parameters left out of the file keep their default value.
func ParseConfigFile(configFile string) (SystemConfiguration, error) {
	systemConfig := DefaultConfiguration()
	source, err := ioutil.ReadFile(configFile)
	if err != nil {
		return systemConfig, err
	}
	err = yaml.UnmarshalStrict(source, &systemConfig)
	if err != nil {
		return systemConfig, err
	}
	return systemConfig, nil
}

//Parse the configuration file, using the defaults if the file does not exist
func ReadConfiguration(configFile string) (SystemConfiguration, error) {
	systemConfig, err := ParseConfigFile(configFile)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfiguration(), nil
	}
	return systemConfig, err
}
