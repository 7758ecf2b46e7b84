package seeders

// Демонстрационная иерархия для пустой БД.
type branchSeed struct {
	Name        string
	Description string
}

type subAreaSeed struct {
	Name        string
	Description string
	Branches    []branchSeed
}

type areaSeed struct {
	Name        string
	Description string
	SubAreas    []subAreaSeed
}

var taxonomyData = []areaSeed{
	{
		Name:        "North",
		Description: "Северный регион",
		SubAreas: []subAreaSeed{
			{Name: "North Coast", Branches: []branchSeed{
				{Name: "Harbor", Description: "Главный офис побережья"},
				{Name: "Lighthouse"},
			}},
			{Name: "North Highlands", Branches: []branchSeed{
				{Name: "Pass"},
			}},
		},
	},
	{
		Name:        "South",
		Description: "Южный регион",
		SubAreas: []subAreaSeed{
			{Name: "South Valley", Branches: []branchSeed{
				{Name: "Riverside"},
				{Name: "Orchard"},
			}},
		},
	},
	{
		Name: "Central",
		SubAreas: []subAreaSeed{
			{Name: "Capital", Description: "Столичный округ", Branches: []branchSeed{
				{Name: "Headquarters", Description: "Центральный офис"},
			}},
		},
	},
}
