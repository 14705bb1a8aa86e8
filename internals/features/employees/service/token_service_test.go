package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	empModel "simbina_backend/internals/features/employees/model"
)

const testSecret = "unit-test-secret-panjangnya-cukup-32!"

func TestIssueAndParseAccessToken(t *testing.T) {
	emp := empModel.EmployeeModel{
		ID:       uuid.New(),
		NIP:      "198701012010",
		FullName: "Ahmad Fauzi",
		Email:    "ahmad@contoh.go.id",
		Role:     "admin",
	}
	now := time.Now().UTC()

	tokenStr, err := IssueAccessTokenWithSecret(emp, now, testSecret)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v (valid=%v)", err, tok != nil && tok.Valid)
	}

	if claims["sub"] != emp.ID.String() {
		t.Errorf("sub = %v", claims["sub"])
	}
	if claims["email"] != emp.Email || claims["user_name"] != emp.FullName ||
		claims["nip"] != emp.NIP || claims["role"] != emp.Role {
		t.Errorf("klaim tidak lengkap: %v", claims)
	}

	exp := int64(claims["exp"].(float64))
	wantExp := now.Add(AccessTTL).Unix()
	if exp != wantExp {
		t.Errorf("exp = %d, want %d", exp, wantExp)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	emp := empModel.EmployeeModel{ID: uuid.New()}
	tokenStr, err := IssueAccessTokenWithSecret(emp, time.Now(), testSecret)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret-lain-yang-juga-cukup-panjang"), nil
	}); err == nil {
		t.Fatal("token dengan secret salah harus gagal parse")
	}
}
