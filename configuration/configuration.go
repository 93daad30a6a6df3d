package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Kinds             string `usage:"JSON array with entity kind definitions (name, id_field, defaults)"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr: ":8080",
		Kinds: `[` +
			`{"name":"users","defaults":{"name":"Unknown","email":""}},` +
			`{"name":"products","defaults":{"name":"Unknown Product","price":0.0}}` +
			`]`,
		ShowBanner: true,
	}
}
