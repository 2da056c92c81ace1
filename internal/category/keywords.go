package category

// rules is the ordered category list. Order matters: the first rule whose
// keyword matches wins, so more specific categories sit before broader ones.
var rules = []Rule{
	{Tag: "FOOD", Keywords: []string{
		"biedronka", "lidl", "auchan", "kaufland", "aldi", "tesco", "dino", "carrefour", "intermarche", "intermarché",
		"netto",
	}},
	{Tag: "GREENFOOD", Keywords: []string{
		"greenfood", "yerbamatestore", "yerbamate", "zielonytarg", "zielnik", "matcha", "zielonybazar",
	}},
	{Tag: "TRANSPORTATION", Keywords: []string{
		"transportation", "koleo", "pkp", "mpk", "autobus", "ztm", "ztp", "parking", "parkomat", "spp", "taxi", "uber",
	}},
	{Tag: "CAR", Keywords: []string{
		"bmw", "citroen", "dacia", "fiat", "ford", "hyundai", "kia", "opel", "honda", "skoda", "toyota",
		"renault", "nissan", "volvo", "volkswagen", "suzuki", "mazda", "mercedes", "ferrari", "peugeot",
		"romeo", "jaguar", "lamborghini", "aston", "bentley", "mclaren", "bugatti", "jeep", "corvette", "lexus",
		"subaru", "lancia", "cadillac", "koenigsegg", "maserati",
	}},
	{Tag: "LEASING", Keywords: []string{
		"leasing", "car2lease", "carsmile",
	}},
	{Tag: "FUEL", Keywords: []string{
		"fuel", "paliwo", "orlen", "lotos", "shell", "circle", "amic",
	}},
	{Tag: "REPAIRS", Keywords: []string{
		"repairs", "oponeo", "mechanic",
	}},
	{Tag: "COFFEE", Keywords: []string{
		"coffee", "kawiarnia", "kawa", "starbucks", "cafe", "café", "caffe",
	}},
	{Tag: "FASTFOOD", Keywords: []string{
		"fastfood", "subway", "doner", "kebab", "mcdonalds", "kfc", "döner", "yalla", "foodmax", "yammi", "zapiekarnia",
		"zapiekanki", "zahir", "fast food",
	}},
	{Tag: "GROCERIES", Keywords: []string{
		"groceries", "restaurant", "restauracja", "restaurante", "pizza", "sushi", "sphinx", "fish", "seafood",
		"k-2", "phenix", "pankejk",
	}},
	{Tag: "CATERING", Keywords: []string{
		"catering", "lunching", "bodychief",
	}},
	{Tag: "ALCOHOL", Keywords: []string{
		"alcohol", "spirits", "whisky", "aperol", "guinness",
	}},
	{Tag: "APARTMENT", Keywords: []string{
		"apartment",
	}},
	{Tag: "BILLS", Keywords: []string{
		"bills", "internet", "pge",
	}},
	{Tag: "RENOVATION", Keywords: []string{
		"renovation", "ikea", "home", "leroy", "castorama", "homla", "jysk", "dekoria", "duka",
	}},
	{Tag: "CLOTHES", Keywords: []string{
		"clothes", "reserved", "ccc", "cloppenburg", "zalando", "eobuwie", "adidas", "zara", "sizeer",
		"maxx", "distance", "ecco", "kazar", "ryłko", "wittchen", "vistula", "wolczanka", "calvin", "guess",
		"puma", "balance", "hilfiger", "fila", "levis", "wrangler", "4f", "bershka", "converse",
		"cropp", "espirit", "h&m", "cooper", "medicine", "ochnik", "pierre", "big star", "nike",
	}},
	{Tag: "JEWELRY", Keywords: []string{
		"jewelry", "apart", "kruk", "tous", "pandora",
	}},
	{Tag: "ENTERTAINMENT", Keywords: []string{
		"entertainment", "ebilet", "cinema", "kino", "vod", "bilet", "muzeum", "teatr", "aquapark",
		"billiards", "darts",
	}},
	{Tag: "PCGAMES", Keywords: []string{
		"pc games", "cdprojektred", "rockstar", "steam", "xbox", "playstation",
	}},
	{Tag: "BIKE", Keywords: []string{
		"loca", "rondo", "bianchi", "scott", "cannondale", "trek", "ghost", "merida", "felt", "orbea",
		"canyon", "superior", "kross", "b'twin", "specialized", "romet", "kellys", "giant", "mondraker",
		"bikesalon", "gravel", "cyklomania", "centrumrowerowe",
	}},
	{Tag: "SPORT", Keywords: []string{
		"sport", "decathlon", "tenis", "babolat", "wilson", "climbing",
	}},
	{Tag: "PHARMACY", Keywords: []string{
		"pharmacy", "apteka", "melissa", "super - pharm",
	}},
	{Tag: "COSMETICS", Keywords: []string{
		"cosmetics", "ksisters", "ecoflores", "rossmann", "douglas", "sephora",
	}},
	{Tag: "TRAVEL", Keywords: []string{
		"travel", "iaka", "rainbow", "coral", "ryanair", "wizz", "lufthansa", "airlines", "flixbus",
	}},
	{Tag: "BOOKS", Keywords: []string{
		"books", "audioteka", "storytel", "legimi",
	}},
	{Tag: "ANIMALS", Keywords: []string{
		"animals", "karma", "weterynarz", "dog",
	}},
	{Tag: "INSURANCE", Keywords: []string{
		"insurance", "pzu", "uniqa", "link4", "warta", "ufg", "generali", "allianz",
	}},
	{Tag: "SUBSCRIPTIONS", Keywords: []string{
		"subscriptions", "netflix", "prime", "hbo", "hulu", "paramount", "canal", "cda", "disney", "tencent",
		"showtime", "youtube", "tidal", "spotify",
	}},
	{Tag: "INVESTMENTS", Keywords: []string{
		"investments", "tfi", "bossa", "xtb", "etoro", "plus500", "brokers", "firstrade", "trading212",
		"exante", "degiro",
	}},
	{Tag: "SELF_DEVELOPMENT", Keywords: []string{
		"self development", "udemy", "skillshare", "course", "eduweb", "coderslab",
	}},
	{Tag: "ELECTRONIC", Keywords: []string{
		"electronic", "morele", "xkom", "komputronik", "apple", "euro.com",
	}},
	{Tag: "SELF_CARE", Keywords: []string{
		"fryzjer", "nails", "beauty",
	}},
	{Tag: "KIDS", Keywords: []string{
		"kids", "children", "toys",
	}},
	{Tag: "SHOPPING", Keywords: []string{
		"shopping", "allegro", "olx", "amazon", "empik",
	}},
}
