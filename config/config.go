package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/flowclient/access"
	"github.com/0xPolygon/flowclient/accounts"
	"github.com/0xPolygon/flowclient/eventwatcher"
	"github.com/0xPolygon/flowclient/log"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagNetwork selects the predefined access node of a Flow network
	FlagNetwork = "network"
	// FlagComponents is the flag for components.
	FlagComponents = "components"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagDisableDefaultConfigVars disables the default vars, all of them must be defined on config files
	FlagDisableDefaultConfigVars = "disable-default-config-vars"
	// FlagAllowDeprecatedFields allows config files with deprecated fields
	FlagAllowDeprecatedFields = "allow-deprecated-fields"
	// FlagMinConfig prints only the mandatory vars
	FlagMinConfig = "min-config"
	// FlagKeyStorePath is the path of the key store file
	FlagKeyStorePath = "key-store-path"
	// FlagPassword is the password needed to decrypt the key store
	FlagPassword = "password"
	// FlagOutputFile is the flag for the output file
	FlagOutputFile = "output"

	deprecatedFieldPublicKey = "ServiceAccount.PublicKey is deprecated. The public key is derived from PrivateKey."

	deprecatedFieldAccessHost = "AccessNode.Host is deprecated. Use AccessNode.URL instead."

	EnvVarPrefix       = "FLOW"
	ConfigType         = "toml"
	SaveConfigFileName = "flowclient_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

type DeprecatedField struct {
	// If the field name ends with a dot means that match a section
	FieldNamePattern string
	Reason           string
}

var (
	// ErrDeprecatedFields is returned when the config files contain deprecated fields
	ErrDeprecatedFields = fmt.Errorf("deprecated fields in config")

	deprecatedFieldsOnConfig = []DeprecatedField{
		{
			FieldNamePattern: "serviceaccount.publickey",
			Reason:           deprecatedFieldPublicKey,
		},
		{
			FieldNamePattern: "accessnode.host",
			Reason:           deprecatedFieldAccessHost,
		},
	}
)

// JournalConfig is the configuration of the transaction journal
type JournalConfig struct {
	// Enabled stores the sent transactions and the watcher checkpoints
	Enabled bool `mapstructure:"Enabled"`
	// DBPath is the path of the sqlite database
	DBPath string `mapstructure:"DBPath"`
}

// MetricsConfig is the configuration of the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"Enabled"`
	Host    string `mapstructure:"Host"`
	Port    int    `mapstructure:"Port"`
}

/*
Config represents the configuration of the flowclient
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// Configuration of the Access API client
	AccessNode access.Config
	// ServiceAccount pays and signs the transactions sent by the client
	ServiceAccount ServiceAccountConfig
	// Configuration of the account operations
	Accounts accounts.Config
	// Journal of sent transactions
	Journal JournalConfig
	// Configuration of the event watcher component
	EventWatcher eventwatcher.Config
	// RPC is the config for the RPC server
	RPC jRPC.Config
	// Metrics is the config of the prometheus endpoint
	Metrics MetricsConfig
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	if network := ctx.String(FlagNetwork); network != "" {
		networkData, err := networkFileData(network)
		if err != nil {
			return nil, err
		}
		filesData = append([]FileData{networkData}, filesData...)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	defaultConfigVars := !ctx.Bool(FlagDisableDefaultConfigVars)
	allowDeprecatedFields := ctx.Bool(FlagAllowDeprecatedFields)
	return LoadFile(filesData, saveConfigPath, defaultConfigVars, allowDeprecatedFields)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0)
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFileFromString decodes a rendered configuration
func LoadFileFromString(configFileData string, configType string, allowDeprecatedFields bool) (*Config, error) {
	cfg := &Config{}
	err := loadString(cfg, configFileData, configType, true, EnvVarPrefix)
	if err != nil {
		return nil, err
	}
	if err := checkDeprecatedFields(viper.AllKeys(), allowDeprecatedFields); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfigToString(cfg Config) (string, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadFile merges the files over the defaults, renders the vars and decodes the result
func LoadFile(files []FileData, saveConfigPath string,
	setDefaultVars bool, allowDeprecatedFields bool) (*Config, error) {
	fileData := make([]FileData, 0)
	if setDefaultVars {
		log.Info("Setting default vars")
		fileData = append(fileData, FileData{Name: "default_mandatory_vars", Content: DefaultMandatoryVars})
	}
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	merger := NewConfigRender(fileData, EnvVarPrefix)

	renderedCfg, err := merger.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		log.Infof("Writing merged config file to: %s", fullPath)
		formatted, err := formatTOML(renderedCfg)
		if err != nil {
			return nil, err
		}
		err = os.WriteFile(fullPath, []byte(formatted), DefaultCreationFilePermissions)
		if err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	cfg, err := LoadFileFromString(renderedCfg, ConfigType, allowDeprecatedFields)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadString(cfg *Config, configData string, configType string,
	allowEnvVars bool, envPrefix string) error {
	viper.Reset()
	viper.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		viper.SetEnvKeyReplacer(replacer)
		viper.SetEnvPrefix(envPrefix)
		viper.AutomaticEnv()
	}
	err := viper.ReadConfig(bytes.NewBuffer([]byte(configData)))
	if err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}

	return viper.Unmarshal(&cfg, decodeHooks...)
}

func checkDeprecatedFields(keysOnConfig []string, allowDeprecatedFields bool) error {
	found := false
	for _, key := range keysOnConfig {
		forbbidenInfo := getDeprecatedField(key)
		if forbbidenInfo == nil {
			continue
		}
		found = true
		log.Warnf("deprecated field %s in config file: %s", key, forbbidenInfo.Reason)
	}
	if found && !allowDeprecatedFields {
		return fmt.Errorf("%w, use --%s to continue anyway", ErrDeprecatedFields, FlagAllowDeprecatedFields)
	}
	return nil
}

func getDeprecatedField(fieldName string) *DeprecatedField {
	for _, deprecatedField := range deprecatedFieldsOnConfig {
		if deprecatedField.FieldNamePattern == fieldName {
			return &deprecatedField
		}
		// If the field name ends with a dot, it means FieldNamePattern*
		if strings.HasSuffix(deprecatedField.FieldNamePattern, ".") &&
			strings.HasPrefix(fieldName, deprecatedField.FieldNamePattern) {
			return &deprecatedField
		}
	}
	return nil
}
