package schema

// ChartDatum is a single labelled value of a chart.
type ChartDatum struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DefaultChartData seeds freshly inserted charts.
var DefaultChartData = []ChartDatum{
	{Label: "Q1", Value: 32},
	{Label: "Q2", Value: 48},
	{Label: "Q3", Value: 27},
	{Label: "Q4", Value: 58},
}

// Chart types.
const (
	ChartLine = "line"
	ChartBar  = "bar"
	ChartPie  = "pie"
)

// Image layouts.
const (
	ImageLayoutDefault    = "default"
	ImageLayoutFullTop    = "full-top"
	ImageLayoutFullBottom = "full-bottom"
	ImageLayoutFullLeft   = "full-left"
	ImageLayoutFullRight  = "full-right"
)

// Attribute names shared across packages.
const (
	AttrLevel        = "level"
	AttrTextAlign    = "textAlign"
	AttrSrc          = "src"
	AttrAlt          = "alt"
	AttrLayout       = "layout"
	AttrSize         = "size"
	AttrColumnWidths = "columnWidths"
	AttrChartType    = "chartType"
	AttrData         = "data"
	AttrStart        = "start"
)

// DefaultAttrs returns a fresh map of default attributes for t.
// Types without attributes return nil.
func DefaultAttrs(t Type) map[string]any {
	switch t {
	case Heading:
		return map[string]any{AttrLevel: 1, AttrTextAlign: nil}
	case Paragraph:
		return map[string]any{AttrTextAlign: nil}
	case Image:
		return map[string]any{AttrSrc: nil, AttrAlt: nil, AttrLayout: ImageLayoutDefault, AttrSize: nil}
	case Row:
		return map[string]any{AttrColumnWidths: []float64{}}
	case Chart:
		data := make([]ChartDatum, len(DefaultChartData))
		copy(data, DefaultChartData)
		return map[string]any{AttrChartType: ChartBar, AttrData: data}
	case OrderedList:
		return map[string]any{AttrStart: 1}
	}
	return nil
}
