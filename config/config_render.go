package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/0xPolygon/flowclient/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
	"gopkg.in/yaml.v3"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// typeMark is appended to unquoted vars so the file stays valid TOML while rendering
	typeMark = ":int"
)

var (
	ErrCycleVars                 = fmt.Errorf("cycle vars")
	ErrMissingVars               = fmt.Errorf("missing vars")
	ErrUnsupportedConfigFileType = fmt.Errorf("unsupported config file type")

	// A={{B}}
	unquotedVarRe = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	// A="{{B:int}}"
	quotedMarkedVarRe = regexp.MustCompile(`=\s*\"\{\{([^}:]+` + typeMark + `)\}\}\"`)
	// {{B:int}}
	markedVarRe = regexp.MustCompile(`\{\{([^}:]+` + typeMark + `)\}\}`)
)

type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges a list of TOML files and resolves the {{Var}} placeholders
type ConfigRender struct {
	// Files in increasing priority, the last one wins
	FilesData []FileData
	// Function to resolve environment variables typically: os.LookupEnv
	LookupEnvFunc     func(key string) (string, bool)
	EnvironmentPrefix string
}

func NewConfigRender(filesData []FileData, environmentPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:         filesData,
		LookupEnvFunc:     os.LookupEnv,
		EnvironmentPrefix: environmentPrefix,
	}
}

// Render merges all files and resolves all the variables inside
func (c *ConfigRender) Render() (string, error) {
	mergedData, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(mergedData)
}

// Merge joins all the files without resolving any var
func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range c.FilesData {
		dataToml := markUnquotedVars(data.Content)
		err := k.Load(rawbytes.Provider([]byte(dataToml)), toml.Parser())
		if err != nil {
			log.Errorf("error loading file %s. Err:%v.FileData: %v", data.Name, err, dataToml)
			return "", fmt.Errorf("fail to load converted template %s to toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return RemoveQuotesForVars(string(marshaled)), nil
}

// ResolveVars replaces the vars of a merged config by their values.
// A var that is not defined anywhere is a ErrMissingVars and vars
// depending on each other (A={{B}} and B={{A}}) are a ErrCycleVars.
func (c *ConfigRender) ResolveVars(fullConfigData string) (string, error) {
	tpl, valuesDefined, err := c.readTemplateAndDefinedValues(fullConfigData)
	if err != nil {
		return "", err
	}
	// Vars without value keep their template form
	rendered := RemoveTypeMarks(c.executeTemplate(tpl, valuesDefined))
	unresolved := c.getUnresolvedVars(tpl, valuesDefined)
	if len(unresolved) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", unresolved, ErrMissingVars)
	}
	// Every var has a value but some can point to other vars, rendering again must
	// reduce the pending vars on each pass or there is a cycle
	finalConfigData, err := c.ResolveCycle(rendered)
	if err != nil {
		return fullConfigData, err
	}
	return finalConfigData, nil
}

// ResolveCycle renders the data until no var is left.
// Each pass must reduce the number of pending vars, if not there is a cycle.
func (c *ConfigRender) ResolveCycle(partialResolvedConfigData string) (string, error) {
	current := RemoveQuotesForVars(partialResolvedConfigData)
	pending := c.GetVars(current)
	if len(pending) == 0 {
		return partialResolvedConfigData, nil
	}
	log.Debugf("ResolveCycle: pending vars: %v", pending)
	for len(pending) > 0 {
		previous := pending
		tpl, valuesDefined, err := c.readTemplateAndDefinedValues(current)
		if err != nil {
			log.Errorf("ResolveCycle: fails reading template. Err: %v. Data:%s", err, current)
			return "", fmt.Errorf("fails to read template ResolveCycle. Err: %w", err)
		}
		current = RemoveTypeMarks(RemoveQuotesForVars(c.executeTemplate(tpl, valuesDefined)))
		pending = c.GetVars(current)
		if len(pending) == len(previous) {
			return partialResolvedConfigData, fmt.Errorf("not resolved cycle vars: %v. Err: %w", pending, ErrCycleVars)
		}
	}
	return current, nil
}

// readTemplateAndDefinedValues parses data as a template and as TOML.
// The vars in data must be unquoted: A={{B}} not A="{{B}}"
func (c *ConfigRender) readTemplateAndDefinedValues(data string) (*fasttemplate.Template,
	map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err:%w", err)
	}
	out := markUnquotedVars(data)
	k := koanf.New(".")
	err = k.Load(rawbytes.Provider([]byte(out)), toml.Parser())
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing template values"+
			" koanf.Load.Content: %s. Err: %w", out, err)
	}
	return tpl, k.All(), nil
}

// markUnquotedVars turns A={{B}} into A="{{B:int}}" that is valid TOML
func markUnquotedVars(data string) string {
	return unquotedVarRe.ReplaceAllString(data, `= "{{${1}`+typeMark+`}}"`)
}

// RemoveQuotesForVars turns A="{{B:int}}" back into A={{B}}
func RemoveQuotesForVars(data string) string {
	return quotedMarkedVarRe.ReplaceAllStringFunc(data, func(match string) string {
		submatch := quotedMarkedVarRe.FindStringSubmatch(match)
		if len(submatch) > 1 {
			return "= " + composeVarKeyForTemplate(strings.TrimSuffix(submatch[1], typeMark))
		}
		return match
	})
}

// RemoveTypeMarks turns {{B:int}} into {{B}}
func RemoveTypeMarks(data string) string {
	return markedVarRe.ReplaceAllStringFunc(data, func(match string) string {
		submatch := markedVarRe.FindStringSubmatch(match)
		if len(submatch) > 1 {
			return composeVarKeyForTemplate(strings.TrimSuffix(submatch[1], typeMark))
		}
		return match
	})
}

// executeTemplate fills the tags from the environment first and then from data
func (c *ConfigRender) executeTemplate(tpl *fasttemplate.Template, data map[string]interface{}) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := c.findTagInEnvironment(tag); ok {
			return w.Write([]byte(v))
		}
		if v, ok := data[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		return w.Write([]byte(composeVarKeyForTemplate(tag)))
	})
}

// getUnresolvedVars returns the vars of the template that are neither in the environment nor in data
func (c *ConfigRender) getUnresolvedVars(tpl *fasttemplate.Template, data map[string]interface{}) []string {
	var unresolved []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if _, ok := c.findTagInEnvironment(tag); ok {
			return 0, nil
		}
		if _, ok := data[tag]; !ok && !contains(unresolved, tag) {
			unresolved = append(unresolved, tag)
		}
		return 0, nil
	})
	return unresolved
}

// GetVars returns all the vars of configData, repeated ones included
func (c *ConfigRender) GetVars(configData string) []string {
	tpl, err := fasttemplate.NewTemplate(configData, startTag, endTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return 0, nil
	})
	return vars
}

func (c *ConfigRender) findTagInEnvironment(tag string) (string, bool) {
	return c.LookupEnvFunc(c.composeVarKeyForEnvironment(tag))
}

// composeVarKeyForEnvironment maps Section.Var to PREFIX_Section_Var
func (c *ConfigRender) composeVarKeyForEnvironment(key string) string {
	return c.EnvironmentPrefix + "_" + strings.ReplaceAll(key, ".", "_")
}

func composeVarKeyForTemplate(key string) string {
	return startTag + key + endTag
}

func contains(vars []string, search string) bool {
	for _, v := range vars {
		if v == search {
			return true
		}
	}
	return false
}

func readFileToString(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	var config map[string]interface{}
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser())
		if err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		config = k.Raw()
	case "yml", "yaml":
		if err := yaml.Unmarshal([]byte(fileData), &config); err != nil {
			return fileData, fmt.Errorf("error loading yaml file. Err: %w", err)
		}
	case "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
	tomlData, err := toml.Parser().Marshal(config)
	if err != nil {
		return fileData, fmt.Errorf("error converting %s to toml. Err: %w", fileType, err)
	}
	return string(tomlData), nil
}
