package lexicon

// Default returns the built-in lexicon: the brand list and category
// rules accumulated while curating the original collections. Collection
// files may override any table via Load.
func Default() *Lexicon {
	l := &Lexicon{
		Brands: []string{
			// Core luxury brands
			"Saint Laurent", "The Row", "Prada", "Tom Ford",
			"Brunello Cucinelli", "Loro Piana", "Zegna", "Hermès",
			"Hermes", "Bottega Veneta", "Gucci", "Valentino", "Burberry",
			"Polo Ralph Lauren", "Ralph Lauren",
			// Italian tailoring
			"Boglioli", "Lardini", "Caruso", "Canali", "Kiton", "Isaia",
			"Brioni", "De Petrillo", "Ring Jacket",
			// European designers
			"Celine", "Dior", "Balenciaga", "Acne Studios", "Thom Browne",
			"Maison Margiela", "Lanvin", "Dries Van Noten", "Dries",
			"Jil Sander", "Marni", "Lemaire", "Margaret Howell", "Loewe",
			// British
			"Drake's", "Drakes", "Anderson & Sheppard", "Sunspel",
			"John Smedley", "Private White V.C.", "SEH Kelly", "Clarks",
			"Dunhill",
			// Contemporary
			"Stone Island", "Moncler", "Off-White", "Fear of God",
			"Rick Owens", "Common Projects", "A.P.C.", "APC",
			"Norse Projects", "Our Legacy", "Auralee",
			// Knitwear specialists
			"Iris Von Arnim", "Le Kasha", "Fedeli", "Gran Sasso",
			"Zanone", "The Elder Statesman",
			// Others
			"Altea", "Officine Generale", "Beams", "Lacoste", "Frame",
			"Frankie Shop", "Massimo Alba", "Berg & Berg", "Saman Amel",
			"Stoffa", "Canada Goose", "Derek Rose", "Castaner", "Ikiji",
		},
		Categories: []CategoryRule{
			{Name: "Outerwear", Keywords: []string{
				"coat", "jacket", "blazer", "overcoat", "parka", "bomber",
				"windbreaker", "trench", "peacoat", "duffle", "topcoat",
				"raincoat", "anorak", "cardigan",
			}},
			{Name: "Knitwear", Keywords: []string{
				"sweater", "pullover", "jumper", "knit", "turtleneck",
				"rollneck", "v-neck", "crewneck", "merino", "cashmere",
			}},
			{Name: "Tops", Keywords: []string{
				"shirt", "polo", "blouse", "t-shirt", "tee", "henley",
				"flannel", "hoodie", "sweatshirt", "tank",
			}},
			{Name: "Bottoms", Keywords: []string{
				"trouser", "pant", "jean", "chino", "short", "corduroy",
				"slack", "jogger", "khaki", "5-pocket", "5 pocket",
			}},
			{Name: "Footwear", Keywords: []string{
				"boot", "shoe", "loafer", "oxford", "derby", "chelsea",
				"sneaker", "brogue", "monk strap", "chukka", "sandal",
				"espadrille", "moccasin", "slipper",
			}},
			{Name: "Accessories", Keywords: []string{
				"scarf", "glove", "hat", "beanie", "cap", "belt", "watch",
				"bag", "sunglasses", "tie", "pocket square", "muffler",
				"wallet", "bracelet", "necklace",
			}},
			{Name: "Suits", Keywords: []string{
				"suit", "tuxedo", "dinner jacket",
			}},
			{Name: "Layering", Keywords: []string{
				"vest", "gilet", "waistcoat", "liner", "thermal",
			}},
		},
		ArtifactPatterns: []string{
			`^i\s+`,     // leading "i "
			`^of\s+`,    // leading "of "
			`^\d+\s+`,   // leading page numbers
			`^[^\p{L}\p{N}_]+`, // leading punctuation clusters; accented letters are letters
			`^[a-z]\s+`, // stray single lowercase letter
		},
		Stopwords:  []string{"the", "a", "an", "of", "i", "with"},
		MinItemLen: 3,
		MaxItemLen: 50,
	}
	// Patterns are vetted literals; compile cannot fail here.
	if err := l.compile(); err != nil {
		panic(err)
	}
	return l
}
