package extension

func dokushoConfig() *Config {
	c := &Config{
		Name:    "Tachiyomi: Dokusho",
		Pkg:     "eu.kanade.tachiyomi.extension.all.dokusho",
		Version: "1.4.1",
		Sources: []*SourceConfig{
			{Name: "Dokusho", ID: "8524619729907384860"},
		},
	}
	c.ApplyDefaults()
	return c
}
