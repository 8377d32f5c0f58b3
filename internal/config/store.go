package config

// Store holds the record store connection settings.
//
// URL selects the engine by scheme: postgres://user@host:5432/db,
// mysql://user@host:3306/db or sqlite://path/to/file.db.
// Key is the access key (the password of the URL user).
type Store struct {
	URL          string `mapstructure:"url"          toml:"url"          json:"URL"`
	Key          string `mapstructure:"key"          toml:"key"          json:"Key"`
	Extras       string `mapstructure:"extras"       toml:"extras"       json:"Extras"`
	AutoMigrate  bool   `mapstructure:"automigrate"  toml:"automigrate"  json:"AutoMigrate"`
	MaxOpenConns int    `mapstructure:"maxopenconns" toml:"maxopenconns" json:"MaxOpenConns"`
	MaxIdleConns int    `mapstructure:"maxidleconns" toml:"maxidleconns" json:"MaxIdleConns"`
}
