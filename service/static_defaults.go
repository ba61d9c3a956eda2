// service/static_defaults.go
package service

// Built-in dictionary lists, used when the deployment does not override
// them in configuration.
var defaultCountries = []string{
	"Austria", "Belgium", "Bulgaria", "Croatia", "Cyprus", "Czech Republic",
	"Denmark", "Estonia", "Finland", "France", "Germany", "Greece",
	"Hungary", "Iceland", "Ireland", "Italy", "Latvia", "Lithuania",
	"Luxembourg", "Malta", "Netherlands", "Norway", "Poland", "Portugal",
	"Romania", "Slovakia", "Slovenia", "Spain", "Sweden", "Switzerland",
	"United Kingdom", "United States", "Canada", "Australia", "New Zealand",
	"Japan", "South Korea", "Singapore", "Brazil", "Mexico", "Argentina",
	"Chile", "Colombia", "South Africa", "Morocco", "Tunisia", "Senegal",
	"India", "Indonesia", "Philippines", "Thailand", "Vietnam", "Turkey",
	"Israel", "United Arab Emirates",
}

var defaultLanguages = []string{
	"English", "French", "Spanish", "German", "Italian", "Portuguese",
	"Dutch", "Swedish", "Norwegian", "Danish", "Finnish", "Polish",
	"Czech", "Hungarian", "Romanian", "Greek", "Bulgarian", "Croatian",
	"Russian", "Ukrainian", "Turkish", "Arabic", "Hebrew", "Hindi",
	"Mandarin", "Cantonese", "Japanese", "Korean", "Thai", "Vietnamese",
	"Indonesian", "Tagalog", "Swahili",
}
