package server

import (
	"fmt"
	"time"

	"github.com/op/go-logging"
	"github.com/spf13/afero"

	"github.com/Cloud-Pie/EFT/config"
	"github.com/Cloud-Pie/EFT/internal/util"
	"github.com/Cloud-Pie/EFT/pkg/transformer"
	"github.com/Cloud-Pie/EFT/storage"
	"github.com/Cloud-Pie/EFT/types"
)

var (
	log              = logging.MustGetLogger("eft")
	sysConfiguration = config.DefaultConfiguration()
)

// Main function to start the HTTP API
func Start(port string, configFile string) error {
	//Print Tool Name
	styleEntry()

	sysConfiguration = ReadSysConfigurationFile(configFile)
	SetLogger(sysConfiguration)
	if port == "" {
		port = sysConfiguration.HttpPort
	}

	router := SetUpServer(sysConfiguration)
	log.Infof("Listening on port %s", port)
	return router.Run(":" + port)
}

func styleEntry() {
	fmt.Println(`
    ________________
   / ____/ ____/_  __/
  / __/ / /_    / /
 / /___/ __/   / /
/_____/_/     /_/

	`)
}

//Set where and how to write logs
func SetLogger(sysConfiguration config.SystemConfiguration) {
	err := util.SetLogger(sysConfiguration.LogFile, sysConfiguration.LogLevel)
	if err != nil {
		log.Warningf("Cannot access log file %s: %s", sysConfiguration.LogFile, err)
	} else if sysConfiguration.LogFile != "" {
		log.Debugf("Logs can be accessed in %s", sysConfiguration.LogFile)
	}
}

//Read the configuration file with the settings of the transformer
func ReadSysConfigurationFile(configFile string) config.SystemConfiguration {
	sysConfiguration, err := config.ReadConfiguration(configFile)
	if err != nil {
		log.Errorf("Configuration file could not be processed, using defaults: %s", err)
		return config.DefaultConfiguration()
	}
	return sysConfiguration
}

//Transform the input file into the output file and keep a history entry of the run
func StartTransformation(fs afero.Fs, sysConfiguration config.SystemConfiguration) (types.Run, error) {
	seed := transformer.ResolveSeed(sysConfiguration.Seed)
	start := time.Now()

	summary, err := transformer.Run(fs, util.INPUT_FILE, util.OUTPUT_FILE, transformer.NewSource(seed))
	if err != nil {
		return types.Run{}, err
	}

	run, err := types.NewRun(util.INPUT_FILE, util.OUTPUT_FILE, seed, summary, start, time.Now())
	if err != nil {
		return run, err
	}
	if sysConfiguration.Storage.Enabled {
		storeRun(sysConfiguration.Storage, run)
	}
	return run, nil
}

//The output is already written at this point, so a failure here is only reported
func storeRun(storageConfig config.Storage, run types.Run) {
	runDAO, err := storage.GetRunDAO(storageConfig.Server, storageConfig.Database)
	if err != nil {
		log.Warningf("Run %s could not be stored: %s", run.ID.Hex(), err)
		return
	}
	defer runDAO.Close()
	if err := runDAO.Insert(run); err != nil {
		log.Warningf("Run %s could not be stored: %s", run.ID.Hex(), err)
		return
	}
	log.Infof("Run stored with id %s", run.ID.Hex())
}
