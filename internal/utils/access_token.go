package utils

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/square/go-jose/v3"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenValidity is the lifetime of an issued session token.
const TokenValidity = 24 * time.Hour

type AccessTokenUtil struct{}

func NewAccessTokenUtil() *AccessTokenUtil {
	return &AccessTokenUtil{}
}

// EncodeToken issues an encrypted session token carrying the account id as the
// "sub" claim, valid for TokenValidity from now.
func (b *AccessTokenUtil) EncodeToken(userId string) (string, error) {
	now := time.Now()
	return b.EncodeClaims(map[string]interface{}{
		"sub": userId,
		"iat": now.Unix(),
		"exp": now.Add(TokenValidity).Unix(),
	})
}

// EncodeClaims encrypts an arbitrary claim set into a compact JWE token.
func (b *AccessTokenUtil) EncodeClaims(claims map[string]interface{}) (string, error) {
	encryptionKey, err := getDerivedEncryptionKey([]byte(os.Getenv("SECRET_JWT")), "")
	if err != nil {
		return "", err
	}

	encrypter, err := jose.NewEncrypter(
		jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: encryptionKey},
		nil,
	)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	jweObject, err := encrypter.Encrypt(payload)
	if err != nil {
		return "", err
	}

	return jweObject.CompactSerialize()
}

func (b *AccessTokenUtil) DecodeToken(token string) (map[string]interface{}, error) {
	encryptionKey, err := getDerivedEncryptionKey([]byte(os.Getenv("SECRET_JWT")), "")
	if err != nil {
		return nil, err
	}

	payload, err := decodeToken(token, encryptionKey)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if err := validateClaims(payload); err != nil {
		return nil, err
	}

	return payload, nil
}

func getDerivedEncryptionKey(keyMaterial []byte, salt string) ([]byte, error) {
	info := []byte("Fintrix Generated Encryption Key")
	if salt != "" {
		info = []byte(fmt.Sprintf("Fintrix Generated Encryption Key (%s)", salt))
	}
	h := hkdf.New(sha256.New, keyMaterial, []byte(salt), info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func decodeToken(tokenStr string, encryptionKey []byte) (map[string]interface{}, error) {
	jweObject, err := jose.ParseEncrypted(tokenStr)
	if err != nil {
		return nil, err
	}
	decrypted, err := jweObject.Decrypt(encryptionKey)
	if err != nil {
		return nil, err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(decrypted, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func validateClaims(payload map[string]interface{}) error {
	now := time.Now().Unix()

	if exp, ok := payload["exp"].(float64); ok {
		if now > int64(exp) {
			return ErrTokenExpired
		}
	}

	if iat, ok := payload["iat"].(float64); ok {
		if now < int64(iat) {
			return ErrTokenInvalid
		}
	}

	return nil
}
