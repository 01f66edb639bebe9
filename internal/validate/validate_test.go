package validate

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b@sub.domain.org", " padded@example.com "}
	for _, s := range valid {
		if !Email(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "plain", "no@domain", "two@@at.com", "spa ce@x.com"}
	for _, s := range invalid {
		if Email(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestPhone(t *testing.T) {
	valid := []string{"(83) 99999-8888", "83999998888", "9999-8888", "99999 8888"}
	for _, s := range valid {
		if !Phone(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", "123", "phone", "99999-88"}
	for _, s := range invalid {
		if Phone(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestCEP(t *testing.T) {
	if !CEP("58700-000") || !CEP("58700000") {
		t.Error("expected valid CEPs to pass")
	}
	if CEP("5870-000") || CEP("abcde-fgh") {
		t.Error("expected invalid CEPs to fail")
	}
}

func TestCPF(t *testing.T) {
	// Well-known valid test numbers.
	valid := []string{"529.982.247-25", "52998224725", "111.444.777-35"}
	for _, s := range valid {
		if !CPF(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{
		"",
		"123",
		"111.111.111-11", // repeated digits
		"529.982.247-24", // wrong check digit
		"529.982.247-2",
	}
	for _, s := range invalid {
		if CPF(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestRequired(t *testing.T) {
	if Required("") || Required("   ") {
		t.Error("expected blank values to fail")
	}
	if !Required("x") {
		t.Error("expected non-blank value to pass")
	}
}
