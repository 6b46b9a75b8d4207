package config

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	publicKey     *rsa.PublicKey
	privateKey    *rsa.PrivateKey
	signingMethod jwt.SigningMethod
	tokenLifetime time.Duration
}

func loadPEM(envVar, fileEnvVar string, parse func([]byte) error) error {
	if pem, ok := os.LookupEnv(envVar); ok {
		return parse([]byte(pem))
	}
	path, ok := os.LookupEnv(fileEnvVar)
	if !ok {
		return fmt.Errorf("no %s or %s env variable set", envVar, fileEnvVar)
	}
	pem, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read key file: %w", err)
	}
	return parse(pem)
}

func NewJWT() (*JWT, error) {
	j := &JWT{
		signingMethod: jwt.GetSigningMethod("RS256"),
		tokenLifetime: time.Hour * 24 * 30,
	}

	err := loadPEM("JWT_PRIVATE_KEY", "JWT_PRIVATE_KEY_FILE", func(pem []byte) (err error) {
		j.privateKey, err = jwt.ParseRSAPrivateKeyFromPEM(pem)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("unable to load JWT private key: %w", err)
	}

	err = loadPEM("JWT_PUBLIC_KEY", "JWT_PUBLIC_KEY_FILE", func(pem []byte) (err error) {
		j.publicKey, err = jwt.ParseRSAPublicKeyFromPEM(pem)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("unable to load JWT public key: %w", err)
	}

	return j, nil
}

func (j *JWT) Sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(j.signingMethod, claims).SignedString(j.privateKey)
}

func (j *JWT) ParseWithClaims(tokenString string, claims jwt.Claims) (*jwt.Token, error) {
	return jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return j.publicKey, nil
		},
	)
}
