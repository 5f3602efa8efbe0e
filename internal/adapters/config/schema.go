package config

// Thumbsfile is the structure of thumbs.yaml.
type Thumbsfile struct {
	CacheDir    string    `yaml:"cache_dir"`
	Workers     int       `yaml:"workers"`
	Size        string    `yaml:"size"`
	Digest      string    `yaml:"digest"`
	Generator   string    `yaml:"generator"`
	FailMarkers bool      `yaml:"fail_markers"`
	Watch       *WatchDTO `yaml:"watch"`
}

// WatchDTO configures watch mode.
type WatchDTO struct {
	Debounce  string `yaml:"debounce"`
	Recursive bool   `yaml:"recursive"`
}
