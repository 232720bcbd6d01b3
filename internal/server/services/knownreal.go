package services

// knownRealAccounts are verified accounts the lookup service cannot see
// from where it runs. They are answered as Real without classification.
var knownRealAccounts = map[string]string{
	// actors
	"mahirahkhan":         "real",
	"haniaheheofficial":   "real",
	"fawadkhan81":         "real",
	"ali_zafar":           "real",
	"sajalaly":            "real",
	"iiqraaziz":           "real",
	"sanashaikhofficial":  "real",
	"bilalabbas_khan":     "real",
	"imranabbas.official": "real",
	"mawrellous":          "real",

	// singers
	"atifaslam":             "real",
	"mominamustehsan":       "real",
	"abidaparveen.official": "real",
	"officialrfakworld":     "real",

	// cricketers
	"safridiofficial":  "real",
	"babarazam":        "real",
	"mrizwanpak":       "real",
	"wasimakramlive":   "real",
	"ishaheenafridi10": "real",
}
