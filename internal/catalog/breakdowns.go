package catalog

// breakdownTable é a tabela estática de dimensões de segmentação.
// Incompatibilidades declaradas aqui valem nos dois sentidos: o validador
// trata a relação como simétrica mesmo quando só um lado a declara.
var breakdownTable = []BreakdownDefinition{
	{
		ID:          "age",
		DisplayName: "Faixa Etária",
		APIField:    "age",
		PossibleValues: []string{
			"13-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65+",
		},
		IncompatibleWith: []string{"hourly"},
	},
	{
		ID:               "gender",
		DisplayName:      "Gênero",
		APIField:         "gender",
		PossibleValues:   []string{"male", "female", "unknown"},
		IncompatibleWith: []string{"hourly"},
	},
	{
		ID:          "country",
		DisplayName: "País",
		APIField:    "country",
	},
	{
		ID:          "region",
		DisplayName: "Região",
		APIField:    "region",
		// country não declara o inverso; o validador cobre os dois sentidos
		IncompatibleWith: []string{"country", "hourly"},
	},
	{
		ID:             "device_platform",
		DisplayName:    "Plataforma do Dispositivo",
		APIField:       "device_platform",
		PossibleValues: []string{"mobile_app", "mobile_web", "desktop"},
	},
	{
		ID:          "publisher_platform",
		DisplayName: "Plataforma de Veiculação",
		APIField:    "publisher_platform",
		PossibleValues: []string{
			"facebook", "instagram", "audience_network", "messenger",
		},
	},
	{
		ID:          "platform_position",
		DisplayName: "Posicionamento",
		APIField:    "platform_position",
	},
	{
		ID:               "impression_device",
		DisplayName:      "Dispositivo de Impressão",
		APIField:         "impression_device",
		IncompatibleWith: []string{"device_platform", "hourly"},
	},
	{
		ID:          "hourly",
		DisplayName: "Hora do Dia",
		APIField:    "hourly_stats_aggregated_by_advertiser_time_zone",
		IncompatibleWith: []string{
			"age", "gender", "country", "region", "impression_device",
		},
	},
}
