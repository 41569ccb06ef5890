package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. El Authentication Gate los degrada todos a
// "no autenticado"; el tipo concreto solo se usa para diagnóstico en logs.
var (
	ErrExpired          = errors.New("token expirado")
	ErrMalformed        = errors.New("token malformado")
	ErrInvalidSignature = errors.New("firma de token inválida")
	ErrUnsupported      = errors.New("formato de token no soportado")
)

// Codec firma y verifica tokens JWT HS256 autocontenidos {sub, iat, exp}.
// La validez de un token es función pura de (token, reloj, secret): no hay
// estado de revocación en el servidor. No se compensa clock skew entre nodos;
// limitación conocida y deliberada.
type Codec struct {
	secret []byte
	issuer string
}

// NewCodec construye el codec. Un secret vacío es un error de configuración
// fatal de arranque, nunca una condición de runtime.
func NewCodec(secret, issuer string) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	return &Codec{secret: []byte(secret), issuer: issuer}, nil
}

// Issue genera un token firmado para el subject con el TTL indicado.
// exp = now + ttl; el instante exp es el último momento válido del token.
func (c *Codec) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify valida firma, estructura y vigencia; devuelve el subject.
// Sin efectos secundarios: puede llamarse concurrentemente.
func (c *Codec) Verify(tokenString string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", classify(err)
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || !tok.Valid {
		return "", ErrUnsupported
	}
	if claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}

// classify mapea los errores de la librería a la taxonomía del codec.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	default:
		return ErrUnsupported
	}
}
