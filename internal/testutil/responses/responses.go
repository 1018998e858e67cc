package responses

// Raw is a classification-service response exactly as received.
type Raw string

// String returns the response text.
func (r Raw) String() string {
	return string(r)
}

// Canned responses.
const (
	Structured   Raw = `{"L1":"Electronics","L2":"Computing","L3":"Monitors"}`
	Lowercase    Raw = `{"l1":"Office Supplies","l2":"Paper","l3":"Copy Paper"}`
	MixedCase    Raw = `{"l1":"Furniture","L2":"Seating","l3":"Task Chairs"}`
	Partial      Raw = `{"L1":"Facilities"}`
	Nested       Raw = `{"L1":{"code":12},"L2":["Hardware","Peripherals"],"L3":null}`
	Annotated    Raw = `{"L1":"Electronics","L2":"Computing","L3":"Monitors","confidence":0.92}`
	Array        Raw = `["Electronics","Computing","Monitors"]`
	Scalar       Raw = `"Electronics"`
	Padded       Raw = "\n  {\"L1\": \"Electronics\"}  \n"
	Unstructured Raw = "not json"
	Fenced       Raw = "```json\n{\"L1\":\"Electronics\"}\n```"
	Truncated    Raw = `{"L1":"Electronics","L2":`
	Empty        Raw = ""
)

// Case describes a canned response and what presenting it yields.
type Case struct {
	Name       string
	Raw        Raw
	Levels     [3]string
	Structured bool
	HasMetrics bool
}

// Cases covers every canned response.
var Cases = []Case{
	{Name: "structured", Raw: Structured, Structured: true, HasMetrics: true, Levels: [3]string{"Electronics", "Computing", "Monitors"}},
	{Name: "lowercase keys", Raw: Lowercase, Structured: true, HasMetrics: true, Levels: [3]string{"Office Supplies", "Paper", "Copy Paper"}},
	{Name: "mixed case keys", Raw: MixedCase, Structured: true, HasMetrics: true, Levels: [3]string{"Furniture", "Seating", "Task Chairs"}},
	{Name: "partial", Raw: Partial, Structured: true, HasMetrics: true, Levels: [3]string{"Facilities", "N/A", "N/A"}},
	{Name: "nested", Raw: Nested, Structured: true, HasMetrics: true, Levels: [3]string{`{"code":12}`, `["Hardware","Peripherals"]`, "N/A"}},
	{Name: "annotated", Raw: Annotated, Structured: true, HasMetrics: true, Levels: [3]string{"Electronics", "Computing", "Monitors"}},
	{Name: "array", Raw: Array, Structured: true},
	{Name: "scalar", Raw: Scalar, Structured: true},
	{Name: "padded", Raw: Padded, Structured: true, HasMetrics: true, Levels: [3]string{"Electronics", "N/A", "N/A"}},
	{Name: "unstructured", Raw: Unstructured},
	{Name: "fenced", Raw: Fenced},
	{Name: "truncated", Raw: Truncated},
	{Name: "empty", Raw: Empty},
}
