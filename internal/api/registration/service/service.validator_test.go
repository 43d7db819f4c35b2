// Package registrationsvc - Test ValidateSubmission: thứ tự lỗi, short-circuit và các rule định dạng.
package registrationsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	registrationmodels "github.com/Angelaliii/SA2/internal/api/registration/models"
)

func clubFields() map[string]string {
	return map[string]string{
		"clubName":     "Cầu Lông CLB",
		"schoolName":   "THPT Chuyên",
		"clubType":     "sports",
		"contactName":  "Nguyen Van A",
		"contactPhone": "0901234567",
		"email":        "club@example.com",
	}
}

func companyFields() map[string]string {
	return map[string]string{
		"companyName":  "Cong ty TNHH ABC",
		"businessId":   "12345678",
		"industryType": "software",
		"contactName":  "Tran Thi B",
		"contactPhone": "0907654321",
		"email":        "hr@abc.example.com",
	}
}

func TestValidateSubmission_ValidClub(t *testing.T) {
	ok, errs := ValidateSubmission(registrationmodels.ClubKind, clubFields())
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateSubmission_MissingFieldsInDeclaredOrder(t *testing.T) {
	fields := clubFields()
	fields["email"] = ""
	delete(fields, "clubName")

	ok, errs := ValidateSubmission(registrationmodels.ClubKind, fields)
	assert.False(t, ok)
	// Lỗi thiếu trường theo đúng thứ tự khai báo của kind
	assert.Equal(t, []string{
		"missing required field: clubName",
		"missing required field: email",
	}, errs)
}

func TestValidateSubmission_ShortCircuitBeforeFormatRules(t *testing.T) {
	fields := companyFields()
	fields["companyName"] = ""
	fields["businessId"] = "abc" // Sai định dạng nhưng không được báo khi còn thiếu trường

	ok, errs := ValidateSubmission(registrationmodels.CompanyKind, fields)
	assert.False(t, ok)
	assert.Equal(t, []string{"missing required field: companyName"}, errs)
}

func TestValidateSubmission_InvalidEmail(t *testing.T) {
	for _, email := range []string{"plainaddress", "a b@example.com", "no-at.example.com", "a@b"} {
		fields := clubFields()
		fields["email"] = email

		ok, errs := ValidateSubmission(registrationmodels.ClubKind, fields)
		assert.False(t, ok, "email %q phải bị từ chối", email)
		assert.Equal(t, []string{"invalid email format"}, errs)
	}
}

func TestValidateSubmission_BusinessID(t *testing.T) {
	cases := []struct {
		businessID string
		valid      bool
	}{
		{"12345678", true},
		{"1234567", false},  // 7 chữ số
		{"123456789", false}, // 9 chữ số
		{"abcd5678", false},  // có chữ cái
		{"1234 678", false},  // có khoảng trắng
	}
	for _, tc := range cases {
		fields := companyFields()
		fields["businessId"] = tc.businessID

		ok, errs := ValidateSubmission(registrationmodels.CompanyKind, fields)
		if tc.valid {
			assert.True(t, ok, "businessId %q phải hợp lệ", tc.businessID)
		} else {
			assert.False(t, ok, "businessId %q phải bị từ chối", tc.businessID)
			assert.Contains(t, errs, "invalid business ID: must be 8 digits")
		}
	}
}

func TestValidateSubmission_CompanyBusinessIDCheckedBeforeEmail(t *testing.T) {
	fields := companyFields()
	fields["businessId"] = "xx"
	fields["email"] = "not-an-email"

	ok, errs := ValidateSubmission(registrationmodels.CompanyKind, fields)
	assert.False(t, ok)
	assert.Equal(t, []string{
		"invalid business ID: must be 8 digits",
		"invalid email format",
	}, errs)
}
