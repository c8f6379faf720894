package invoicer

// CompanyProfile holds the issuing company identity printed on every
// invoice. All fields are free text and default to empty; the logo and
// signature are opaque image references (a path, a URL, or encoded image
// data), never interpreted here.
//
// The profile is a singleton: edits overwrite it wholesale.
type CompanyProfile struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	TaxID     string `json:"taxId"`
	Logo      string `json:"logo,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// DisplayName returns the company name, or a generic fallback when the
// profile was never filled in.
func (c CompanyProfile) DisplayName() string {
	if c.Name == "" {
		return "User"
	}
	return c.Name
}
