package utility

import (
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// JwtClaims chứa claims của access token
type JwtClaims struct {
	UserID string `json:"user_id"` // ID của user sở hữu token
	jwt.StandardClaims
}

// CreateToken tạo JWT token (HS256) cho user, hết hạn sau expireDays ngày
func CreateToken(secret string, userID string, expireDays int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is empty")
	}
	if expireDays <= 0 {
		expireDays = 30
	}

	now := time.Now()
	claims := JwtClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.AddDate(0, 0, expireDays).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken xác thực token và trả về userID bên trong claims
func ParseToken(secret string, tokenString string) (string, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Chỉ chấp nhận HMAC, chặn tấn công đổi alg
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.UserID, nil
}
