package config

import (
	"fmt"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/require"
)

type testCaseData struct {
	name                 string
	contents             []string
	envVars              map[string]string
	expectedMerged       string
	expectedRenderConfig string
	expectedError        error
}

func TestConfigRenderMerge(t *testing.T) {
	var tests = []testCaseData{
		{
			name: "last file wins",
			contents: []string{
				"AccessNodeURL = \"127.0.0.1:3569\"\n",
				"AccessNodeURL = \"access.devnet.nodes.onflow.org:9000\"\nPathRWData = \"/tmp/flowclient\"\n",
			},
			expectedRenderConfig: "AccessNodeURL = \"access.devnet.nodes.onflow.org:9000\"\nPathRWData = \"/tmp/flowclient\"\n",
		},
		{
			name:          "quoted var without value",
			contents:      []string{"[AccessNode]\nURL = \"{{AccessNodeURL}}\"\n"},
			expectedError: ErrMissingVars,
		},
		{
			name:          "unquoted var without value",
			contents:      []string{"[ServiceAccount]\nKeyIndex = {{ServiceAccountKeyIndex}}\n"},
			expectedError: ErrMissingVars,
		},
	}
	executeCases(t, tests)
}

func TestConfigRenderDetectCycle(t *testing.T) {
	var tests = []testCaseData{
		{
			name:          "two vars pointing to each other",
			contents:      []string{"ServiceAccountKeyIndex = {{KeyIndex}}\n", "KeyIndex = {{ServiceAccountKeyIndex}}\n"},
			expectedError: ErrCycleVars,
		},
		{
			name:          "var pointing to itself",
			contents:      []string{"PathRWData = {{PathRWData}}\n"},
			expectedError: ErrCycleVars,
		},
		{
			name:                 "cycle broken by env var",
			contents:             []string{"ServiceAccountKeyIndex = {{KeyIndex}}\n", "KeyIndex = {{ServiceAccountKeyIndex}}\n"},
			envVars:              map[string]string{"UTCR_KeyIndex": "2"},
			expectedRenderConfig: "KeyIndex = 2\nServiceAccountKeyIndex = 2\n",
		},
	}
	executeCases(t, tests)
}

func TestMarkUnquotedVars(t *testing.T) {
	marked := markUnquotedVars("KeyIndex = {{ServiceAccountKeyIndex}}\n")
	require.Equal(t, "KeyIndex = \"{{ServiceAccountKeyIndex:int}}\"\n", marked)
	require.Equal(t, "KeyIndex = {{ServiceAccountKeyIndex}}\n", RemoveQuotesForVars(marked))
	require.Equal(t, "{{ServiceAccountKeyIndex}}", RemoveTypeMarks("{{ServiceAccountKeyIndex:int}}"))

	// quoted vars are already valid TOML and keep their quotes
	quoted := "URL = \"{{AccessNodeURL}}\"\n"
	require.Equal(t, quoted, markUnquotedVars(quoted))
	require.Equal(t, quoted, RemoveQuotesForVars(quoted))
}

func TestConfigRenderUnquotedVarKeepsType(t *testing.T) {
	contents := []string{
		"[ServiceAccount]\nKeyIndex = {{ServiceAccountKeyIndex}}\nAddress = \"{{ServiceAccountAddress}}\"\n",
		"ServiceAccountKeyIndex = 3\nServiceAccountAddress = \"f8d6e0586b0a20c7\"\n",
	}

	t.Run("from file", func(t *testing.T) {
		k := renderToKoanf(t, contents, nil)
		require.Equal(t, int64(3), k.Get("ServiceAccount.KeyIndex"))
		require.Equal(t, "f8d6e0586b0a20c7", k.Get("ServiceAccount.Address"))
	})

	t.Run("from env var", func(t *testing.T) {
		k := renderToKoanf(t, contents, map[string]string{
			"UTCR_ServiceAccountKeyIndex": "7",
			"UTCR_ServiceAccountAddress":  "01cf0e2f2f715450",
		})
		require.Equal(t, int64(7), k.Get("ServiceAccount.KeyIndex"))
		require.Equal(t, "01cf0e2f2f715450", k.Get("ServiceAccount.Address"))
	})

	t.Run("merged keeps the var unquoted", func(t *testing.T) {
		merged, err := newConfigRenderTestData(contents).Sut.Merge()
		require.NoError(t, err)
		require.Contains(t, merged, "KeyIndex = {{ServiceAccountKeyIndex}}")
		require.Contains(t, merged, "Address = \"{{ServiceAccountAddress}}\"")
		require.NotContains(t, merged, typeMark)
	})
}

func TestConfigRenderComposedValue(t *testing.T) {
	k := renderToKoanf(t, []string{
		"PathRWData = \"/tmp/flowclient\"\n",
		"[Journal]\nDBPath = \"{{PathRWData}}/journal.sqlite\"\n",
	}, nil)
	require.Equal(t, "/tmp/flowclient/journal.sqlite", k.Get("Journal.DBPath"))

	k = renderToKoanf(t, []string{
		"PathRWData = \"/tmp/flowclient\"\n",
		"[Journal]\nDBPath = \"{{PathRWData}}/journal.sqlite\"\n",
	}, map[string]string{"UTCR_PathRWData": "/data"})
	require.Equal(t, "/data/journal.sqlite", k.Get("Journal.DBPath"))
}

func TestConfigRenderDefaults(t *testing.T) {
	k := renderToKoanf(t, []string{DefaultMandatoryVars, DefaultVars, DefaultValues}, nil)
	require.Equal(t, int64(0), k.Get("ServiceAccount.KeyIndex"))
	require.Equal(t, "f8d6e0586b0a20c7", k.Get("ServiceAccount.Address"))
	require.Equal(t, "", k.Get("ServiceAccount.PrivateKey"))
	require.Equal(t, "127.0.0.1:3569", k.Get("AccessNode.URL"))
	require.Equal(t, "/tmp/flowclient/journal.sqlite", k.Get("Journal.DBPath"))
}

func TestConfigRenderConvertFileToToml(t *testing.T) {
	jsonFile := `{
	"AccessNodeURL": "access.devnet.nodes.onflow.org:9000",
  "StartHeight": 63,
  "EventWatcher": {
    "ChunkSize": 250,
    "Name": "watcher"
  }
}
`
	data, err := convertFileToToml(jsonFile, "json")
	require.NoError(t, err)
	require.Equal(t, "AccessNodeURL = \"access.devnet.nodes.onflow.org:9000\"\nStartHeight = 63.0\n\n[EventWatcher]\n  ChunkSize = 250.0\n  Name = \"watcher\"\n", data)

	yamlFile := "AccessNodeURL: access.devnet.nodes.onflow.org:9000\nEventWatcher:\n  Name: watcher\n"
	data, err = convertFileToToml(yamlFile, "yaml")
	require.NoError(t, err)
	require.Contains(t, data, "AccessNodeURL = \"access.devnet.nodes.onflow.org:9000\"")
	require.Contains(t, data, "[EventWatcher]")

	_, err = convertFileToToml("A=1", "ini")
	require.ErrorIs(t, err, ErrUnsupportedConfigFileType)

	data, err = convertFileToToml("A=1", "conf")
	require.NoError(t, err)
	require.Equal(t, "A=1", data)
}

type configRenderTestData struct {
	Sut     *ConfigRender
	EnvMock *osLookupEnvMock
}

func newConfigRenderTestData(data []string) configRenderTestData {
	envMock := &osLookupEnvMock{
		Env: map[string]string{},
	}
	filesData := make([]FileData, len(data))
	for i, d := range data {
		filesData[i] = FileData{Name: fmt.Sprintf("file%d", i), Content: d}
	}
	return configRenderTestData{
		EnvMock: envMock,
		Sut: &ConfigRender{
			FilesData:         filesData,
			LookupEnvFunc:     envMock.LookupEnv,
			EnvironmentPrefix: "UTCR",
		},
	}
}

type osLookupEnvMock struct {
	Env map[string]string
}

func (m *osLookupEnvMock) LookupEnv(key string) (string, bool) {
	val, exists := m.Env[key]
	return val, exists
}

// renderToKoanf renders contents and parses the result back as TOML
func renderToKoanf(t *testing.T, contents []string, envVars map[string]string) *koanf.Koanf {
	t.Helper()
	testData := newConfigRenderTestData(contents)
	if envVars != nil {
		testData.EnvMock.Env = envVars
	}
	res, err := testData.Sut.Render()
	require.NoError(t, err)
	k := koanf.New(".")
	require.NoError(t, k.Load(rawbytes.Provider([]byte(res)), toml.Parser()), res)
	return k
}

func executeCases(t *testing.T, tests []testCaseData) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testData := newConfigRenderTestData(tt.contents)
			if tt.envVars != nil {
				testData.EnvMock.Env = tt.envVars
			}
			if tt.expectedMerged != "" {
				merged, err := testData.Sut.Merge()
				require.NoError(t, err)
				require.Equal(t, tt.expectedMerged, merged)
			}
			res, err := testData.Sut.Render()
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			if len(tt.expectedRenderConfig) > 0 {
				require.Equal(t, tt.expectedRenderConfig, res)
			}
		})
	}
}
