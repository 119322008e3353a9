package domain

// Profile describes everything needed to issue one certificate or CSR.
type Profile struct {
	Subject    []NameAttribute   `yaml:"subject"`
	Validity   Validity          `yaml:"validity"`
	KeyAlgo    KeyAlgorithm      `yaml:"key_algorithm"`
	HashAlgo   HashAlgorithm     `yaml:"hash_algorithm"`
	Extensions []ExtensionConfig `yaml:"extensions"`
}

// Validity is a certificate validity window expressed in days from issuance.
type Validity struct {
	Days int `yaml:"days"`
}
