package migration

// defaultContentSeeds is the hand-authored page content loaded by the content
// step. Keyed by (page, section, key); the loader upserts, so editing a value
// here and re-running the pipeline updates the live row.
func defaultContentSeeds() []ContentSeed {
	return []ContentSeed{
		{"home", "hero", "title", "Engineered Chemistry for Modern Construction"},
		{"home", "hero", "subtitle", "Admixtures, waterproofing systems and protective coatings trusted on metro rail, highway and industrial projects across the country."},
		{"home", "hero", "cta_label", "Explore Products"},
		{"home", "stats", "years_in_business", "28"},
		{"home", "stats", "projects_completed", "450"},
		{"home", "stats", "products_in_range", "120"},
		{"home", "seo", "meta_title", "ChemCoat | Construction Chemicals Manufacturer"},
		{"home", "seo", "meta_description", "ChemCoat manufactures concrete admixtures, waterproofing chemicals, epoxy systems and protective coatings for infrastructure, industrial and commercial construction projects."},
		{"home", "seo", "meta_keywords", "construction chemicals, concrete admixtures, waterproofing, epoxy grouts, protective coatings"},

		{"about", "company", "title", "About ChemCoat"},
		{"about", "company", "body", "ChemCoat has supplied specialty construction chemicals since 1997, supporting contractors and government agencies with site trials, dosage design and on-site technical service."},
		{"about", "company", "mission", "Dependable chemistry, delivered with engineering support."},
		{"about", "seo", "meta_title", "About ChemCoat | Construction Chemicals Since 1997"},
		{"about", "seo", "meta_description", "Learn about ChemCoat's manufacturing facilities, quality systems and three decades of experience supplying construction chemicals to infrastructure projects."},
		{"about", "seo", "meta_keywords", "about chemcoat, chemical manufacturer, quality systems"},

		{"products", "listing", "title", "Product Range"},
		{"products", "listing", "intro", "Browse the full range by category, or contact our technical desk for dosage and application guidance."},
		{"products", "seo", "meta_title", "Products | ChemCoat Construction Chemicals"},
		{"products", "seo", "meta_description", "Concrete admixtures, waterproofing membranes, repair mortars, epoxy anchors and curing compounds with technical datasheets and application notes for every product."},
		{"products", "seo", "meta_keywords", "admixtures, waterproofing, repair mortar, epoxy anchor, curing compound"},

		{"projects", "listing", "title", "Project Case Studies"},
		{"projects", "listing", "intro", "Selected projects where ChemCoat systems were specified and supplied."},
		{"projects", "seo", "meta_title", "Projects | ChemCoat Case Studies"},
		{"projects", "seo", "meta_description", "Case studies covering metro rail stations, highway bridges, water treatment plants and industrial buildings where ChemCoat construction chemicals were used."},
		{"projects", "seo", "meta_keywords", "metro rail projects, bridge construction, case studies"},

		{"contact", "office", "address", "Plot 14, Industrial Estate Phase II, Vatva, Ahmedabad 382445"},
		{"contact", "office", "phone", "+91 79 4890 2200"},
		{"contact", "office", "email", "sales@chemcoat.example"},
		{"contact", "seo", "meta_title", "Contact ChemCoat | Sales & Technical Support"},
		{"contact", "seo", "meta_description", "Reach the ChemCoat sales and technical support desk for product selection, dosage trials, datasheets and dealer enquiries across all regions."},
		{"contact", "seo", "meta_keywords", "contact, technical support, dealer enquiry"},
	}
}
