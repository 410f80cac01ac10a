package ui

// Setter is one named property assignment in a style.
type Setter struct {
	Name  string
	Value any
}

// Style is an ordered list of property setters with an optional base
// style. Application walks the base chain first, then applies own
// setters in list order, so derived styles override inherited values.
type Style struct {
	base    *Style
	setters []Setter
}

// NewStyle creates an empty style.
func NewStyle() *Style {
	return &Style{}
}

// WithBase sets the base style and returns the receiver for chaining.
func (s *Style) WithBase(base *Style) *Style {
	s.base = base
	return s
}

// AddSetter appends a property setter and returns the receiver for
// chaining.
func (s *Style) AddSetter(name string, value any) *Style {
	s.setters = append(s.setters, Setter{Name: name, Value: value})
	return s
}

// Base returns the base style, or nil.
func (s *Style) Base() *Style {
	return s.base
}

// Setters returns the style's own setters in application order.
func (s *Style) Setters() []Setter {
	return s.setters
}

// ApplyStyle applies a style to a control: the base chain first, then
// the style's own setters in order. The applied style is recorded on
// the widget for later re-application.
func ApplyStyle(c Control, s *Style) {
	if s == nil {
		return
	}
	if s.base != nil {
		ApplyStyle(c, s.base)
	}
	c.Widget().style = s
	for _, setter := range s.setters {
		c.SetProperty(setter.Name, setter.Value)
	}
}
