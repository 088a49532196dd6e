package models

// BlockRole is the semantic role assigned to a line
type BlockRole string

const (
	RoleAddressing             BlockRole = "addressing"
	RoleActionTitle            BlockRole = "action_title"
	RoleSubsection             BlockRole = "subsection"
	RoleSectionHeading         BlockRole = "section_heading"
	RoleJurisprudenceQuote     BlockRole = "jurisprudence_quote"
	RoleQualificationParagraph BlockRole = "qualification_paragraph"
	RoleBodyParagraph          BlockRole = "body_paragraph"
)

// IsParagraph reports whether the role is one of the two paragraph variants
func (r BlockRole) IsParagraph() bool {
	return r == RoleQualificationParagraph || r == RoleBodyParagraph
}

// StyleAttributes describes how a block is laid out. Empty fields are not rendered.
type StyleAttributes struct {
	TextAlign  string  `json:"text_align"`
	FontWeight string  `json:"font_weight"`
	Margin     string  `json:"margin"`
	TextIndent string  `json:"text_indent"`
	MarginLeft string  `json:"margin_left,omitempty"`
	FontSize   float64 `json:"font_size,omitempty"` // points
}

// Block is one styled output unit. Text may carry <b>/<i> inline markup.
type Block struct {
	Role  BlockRole       `json:"role"`
	Text  string          `json:"text"`
	Style StyleAttributes `json:"style"`
}
