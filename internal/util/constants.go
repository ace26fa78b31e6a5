package util

//Files read and written by the transformation. Neither is configurable.
const INPUT_FILE = "cloud_partners_large.json"
const OUTPUT_FILE = "json_data.json"

const CONFIG_FILE = "config.yml"
const DEFAULT_LOG_LEVEL = "INFO"
const DEFAULT_HTTP_PORT = "8084"
const DEFAULT_MAX_REQUEST_BYTES = 64 << 20
const DEFAULT_DB_SERVER_RUNS = "localhost"
const DEFAULT_DB_RUNS = "Emissions"
const DEFAULT_DB_COLLECTION_RUNS = "Runs"

//Keys of the cloud partners document
const KEY_CLOUD_PARTNERS = "cloud_partners"
const KEY_DATA_CENTERS = "data_centers"
const KEY_WORKLOAD_EMISSIONS = "workload_dependent_emissions"
const KEY_EMISSION_INTERVAL = "emission_interval"
const KEY_CENTER_EMISSION_FACTOR = "center_emission_factor"

//Inclusive bounds of the generated center emission factor
const MIN_EMISSION_FACTOR = 1
const MAX_EMISSION_FACTOR = 40
