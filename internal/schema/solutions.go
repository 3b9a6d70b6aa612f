package schema

// Field names of the solver iteration log.
const (
	Iteration       = "iteration"
	BigBoxX         = "bigbox_x"
	BigBoxY         = "bigbox_y"
	BigBoxZ         = "bigbox_z"
	RadiosityMin    = "radiosity_min"
	RadiosityCenter = "radiosity_center"
	RadiosityMax    = "radiosity_max"
	Photons         = "photons"
	Duration        = "duration"
	TimeFromStart   = "time_from_start"
	Comment         = "comment"
)

// SolutionsLog is the layout of solutions.csv, one line per solver iteration.
// Only the bounding box extents and the radiosity statistics are decoded;
// the comment is free text and may be empty or missing entirely.
var SolutionsLog = Layout{
	{Name: Iteration, Type: FieldText, Required: true},
	{Name: BigBoxX, Type: FieldNumeric, Required: true, Retain: true},
	{Name: BigBoxY, Type: FieldNumeric, Required: true},
	{Name: BigBoxZ, Type: FieldNumeric, Required: true, Retain: true},
	{Name: RadiosityMin, Type: FieldNumeric, Required: true, Retain: true},
	{Name: RadiosityCenter, Type: FieldNumeric, Required: true, Retain: true},
	{Name: RadiosityMax, Type: FieldNumeric, Required: true, Retain: true},
	{Name: Photons, Type: FieldText, Required: true},
	{Name: Duration, Type: FieldText, Required: true},
	{Name: TimeFromStart, Type: FieldText, Required: true},
	{Name: Comment, Type: FieldText, Retain: true},
}
