package util

import (
	"Nokoroa/internal/api/dto"
	"testing"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestValidateSearchPostsDTO(t *testing.T) {
	cases := []struct {
		name    string
		dto     dto.SearchPostsDTO
		wantErr bool
	}{
		{"empty is valid", dto.SearchPostsDTO{}, false},
		{"limit in range", dto.SearchPostsDTO{Limit: intPtr(50)}, false},
		{"limit too large", dto.SearchPostsDTO{Limit: intPtr(51)}, true},
		{"limit zero", dto.SearchPostsDTO{Limit: intPtr(0)}, true},
		{"negative offset", dto.SearchPostsDTO{Offset: intPtr(-1)}, true},
		{"offset zero", dto.SearchPostsDTO{Offset: intPtr(0)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDTO(&tc.dto)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateDTO(%+v) = %v, wantErr %v", tc.dto, err, tc.wantErr)
			}
		})
	}
}

func TestValidateSearchByLocationDTO(t *testing.T) {
	cases := []struct {
		name    string
		dto     dto.SearchByLocationDTO
		wantErr bool
	}{
		{"full trio", dto.SearchByLocationDTO{CenterLat: floatPtr(35.68), CenterLng: floatPtr(139.76), Radius: floatPtr(10)}, false},
		{"latitude out of range", dto.SearchByLocationDTO{CenterLat: floatPtr(91)}, true},
		{"longitude out of range", dto.SearchByLocationDTO{CenterLng: floatPtr(-181)}, true},
		{"zero radius", dto.SearchByLocationDTO{Radius: floatPtr(0)}, true},
		{"negative radius", dto.SearchByLocationDTO{Radius: floatPtr(-5)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDTO(&tc.dto)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateDTO(%+v) = %v, wantErr %v", tc.dto, err, tc.wantErr)
			}
		})
	}
}

func TestValidateSignupDTO(t *testing.T) {
	valid := dto.SignupDTO{Name: "taro", Email: "taro@example.com", Password: "secret123"}
	if err := ValidateDTO(&valid); err != nil {
		t.Fatalf("valid signup rejected: %v", err)
	}

	badEmail := valid
	badEmail.Email = "not-an-email"
	if err := ValidateDTO(&badEmail); err == nil {
		t.Fatal("bad email accepted")
	}

	shortPassword := valid
	shortPassword.Password = "123"
	if err := ValidateDTO(&shortPassword); err == nil {
		t.Fatal("short password accepted")
	}
}
