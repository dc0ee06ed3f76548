package config

// SecretStringValue replaces confidential values in logs and dumps.
const SecretStringValue = "<secret>"

// SecretString carries values of confidential config properties. It never
// shows the actual value when marshaled or printed; use string(s) to get it.
type SecretString string

func (s SecretString) String() string {
	if len(s) == 0 {
		return ""
	}
	return SecretStringValue
}

func (s SecretString) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte("\"" + SecretStringValue + "\""), nil
}

func (s SecretString) MarshalYAML() (any, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return SecretStringValue, nil
}
