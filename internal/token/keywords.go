package token

var keywords = map[string]Kind{
	"soldier": KwSoldier,
	"force":   KwForce,
	"intel":   KwIntel,
	"flag":    KwFlag,
	"shield":  KwShield,
	"retreat": KwRetreat,
	"march":   KwMarch,
	"deploy":  KwDeploy,
	"shout":   KwShout,
	"scout":   KwScout,
	// boolean literals are capitalized in WarLang
	"Ally":  BoolLit,
	"Enemy": BoolLit,
}

// LookupKeyword returns the kind for a keyword spelling.
// Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

func keywordSpelling(k Kind) (string, bool) {
	for s, kind := range keywords {
		if kind == k {
			return s, true
		}
	}
	return "", false
}
