package rules

import (
	"context"
	"net"
	"strings"

	"pet-shop-api/internal/platform/logger"
)

// MaxEmailLength es el largo máximo de una dirección (RFC 5321 path limit).
const MaxEmailLength = 254

// DomainResolver es lo mínimo de *net.Resolver que usa el chequeo de entregabilidad.
type DomainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

type EmailOptions struct {
	MaxLength           int
	CheckDeliverability bool
	Resolver            DomainResolver // nil => net.DefaultResolver
}

type EmailValidator struct {
	maxLength   int
	deliverable bool
	resolver    DomainResolver
	log         logger.Logger
}

func NewEmailValidator(opts EmailOptions, log logger.Logger) *EmailValidator {
	max := opts.MaxLength
	if max <= 0 {
		max = MaxEmailLength
	}
	r := opts.Resolver
	if r == nil {
		r = net.DefaultResolver
	}
	return &EmailValidator{
		maxLength:   max,
		deliverable: opts.CheckDeliverability,
		resolver:    r,
		log:         log,
	}
}

// Validate devuelve el email normalizado (dominio en minúsculas) o Unprocessable.
// Cada rechazo se loguea con el input ofensivo.
func (v *EmailValidator) Validate(ctx context.Context, raw string) (string, error) {
	email := strings.TrimSpace(raw)

	if len(email) > v.maxLength {
		v.log.Info("email too long", map[string]any{"email": email, "max": v.maxLength})
		return "", Unprocessable("email is too long (max %d characters)", v.maxLength)
	}
	if err := validate.Var(email, "required,email"); err != nil {
		v.log.Info("invalid email", map[string]any{"email": email})
		return "", Unprocessable("%q is not a valid email address", email)
	}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], strings.ToLower(email[at+1:])
	normalized := local + "@" + domain

	if v.deliverable {
		if err := v.checkDomain(ctx, domain); err != nil {
			v.log.Info("undeliverable email", map[string]any{"email": email})
			return "", err
		}
	}
	return normalized, nil
}

func (v *EmailValidator) checkDomain(ctx context.Context, domain string) error {
	mx, err := v.resolver.LookupMX(ctx, domain)
	if err == nil && len(mx) > 0 {
		// null MX (RFC 7505): el dominio declara que no recibe correo
		if len(mx) == 1 && (mx[0].Host == "." || mx[0].Host == "") {
			return Unprocessable("the domain name %s does not accept email", domain)
		}
		return nil
	}
	hosts, err := v.resolver.LookupHost(ctx, domain)
	if err != nil || len(hosts) == 0 {
		return Unprocessable("the domain name %s does not exist", domain)
	}
	return nil
}
