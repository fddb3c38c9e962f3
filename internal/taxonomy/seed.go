package taxonomy

// seedSpecialties is the default specialty tree, used when no taxonomy
// file is configured. Titles match the quiz catalog's specialty names.
var seedSpecialties = []Specialty{
	{
		Title: "Internal Medicine",
		Subspecialties: []string{
			"Cardiology",
			"Endocrinology",
			"Gastroenterology",
			"Infectious Disease",
			"Nephrology",
			"Pulmonology",
			"Rheumatology",
		},
	},
	{
		Title: "Surgery",
		Subspecialties: []string{
			"Cardiothoracic Surgery",
			"General Surgery",
			"Neurosurgery",
			"Orthopedic Surgery",
			"Plastic Surgery",
			"Vascular Surgery",
		},
	},
	{
		Title: "Pediatrics",
		Subspecialties: []string{
			"Neonatology",
			"Pediatric Cardiology",
			"Pediatric Emergency Medicine",
		},
	},
	{
		Title: "Obstetrics and Gynaecology",
		Subspecialties: []string{
			"Gynecologic Oncology",
			"Maternal-Fetal Medicine",
			"Reproductive Endocrinology",
		},
	},
	{
		Title: "Psychiatry",
		Subspecialties: []string{
			"Addiction Psychiatry",
			"Child and Adolescent Psychiatry",
			"Forensic Psychiatry",
		},
	},
	{
		Title: "Emergency Medicine",
		Subspecialties: []string{
			"Medical Toxicology",
			"Pediatric Emergency Medicine",
			"Sports Medicine",
		},
	},
	{
		Title:          "Anesthesiology",
		Subspecialties: []string{"Critical Care Medicine", "Pain Medicine"},
	},
	{
		Title:          "Radiology",
		Subspecialties: []string{"Interventional Radiology", "Neuroradiology"},
	},
	{
		Title:          "Dermatology",
		Subspecialties: []string{"Dermatopathology", "Pediatric Dermatology"},
	},
	{
		Title:          "General Practice",
		Subspecialties: nil,
	},
}
