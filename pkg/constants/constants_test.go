package constants

import "testing"

func TestEnvVarKey(t *testing.T) {
	tests := map[string]string{
		ContainerConfigKey:    "ABS_WAGON_CONTAINER",
		DownloadPathConfigKey: "ABS_WAGON_DOWNLOAD_PATH",
		DebugConfigKey:        "ABS_WAGON_LOGGING_DEBUG",
		"azure.page_timeout":  "ABS_WAGON_AZURE_PAGE_TIMEOUT",
	}

	for key, want := range tests {
		if got := EnvVarKey(key); got != want {
			t.Errorf("EnvVarKey(%q) failed, expected %s, got %s", key, want, got)
		}
	}
}
