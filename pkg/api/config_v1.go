// pkg/api/config_v1.go
package api

// Top-level keys of a v1 configuration document. All three are required.
const (
	KeyHashMap      = "hash_map"
	KeyReflectorMap = "reflector_map"
	KeyWheels       = "wheels"
)

// WheelCount is the number of integers under KeyWheels.
const WheelCount = 3

// ConfigV1 is the on-disk configuration schema, used when writing configs.
// Readers decode the maps in document order instead of through this struct,
// because index->letter resolution in lenient mode depends on that order.
type ConfigV1 struct {
	HashMap      map[string]int    `json:"hash_map" yaml:"hash_map"`
	ReflectorMap map[string]string `json:"reflector_map" yaml:"reflector_map"`
	Wheels       []int             `json:"wheels" yaml:"wheels"`
}

// CheckReportV1 is the stable JSON schema printed by `enigma --check`.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CheckReportV1 struct {
	Config     string   `json:"config"`
	Format     string   `json:"format"`
	Lenient    bool     `json:"lenient"`
	Bijective  bool     `json:"bijective"`
	Involution bool     `json:"involution"`
	Wheels     [3]int   `json:"wheels"`
	Warnings   []string `json:"warnings,omitempty"`
}
