package regexengine

import (
	"regexp"
	"strings"
)

// ssnCheck enforces the SSN invalid-prefix exclusions spec.md names:
// area 000/666/9xx, group 00, serial 0000. Expressed as a validator rather
// than regex lookahead because RE2 (Go's regexp engine) has no lookaround.
func ssnCheck(match string) bool {
	parts := strings.Split(match, "-")
	if len(parts) != 3 {
		return false
	}
	area, group, serial := parts[0], parts[1], parts[2]
	if area == "000" || area == "666" || (len(area) == 3 && area[0] == '9') {
		return false
	}
	if group == "00" {
		return false
	}
	if serial == "0000" {
		return false
	}
	return true
}

// builtinCatalogue is the fixed, bit-exact pattern catalogue every
// implementation of this pipeline reproduces. Order is significant: it is
// the order in which Engine.Scan emits detections for a given match
// position.
func builtinCatalogue() []PatternDefinition {
	return []PatternDefinition{
		// ── PII ──
		{
			Name:        "aadhaar_number",
			Pattern:     regexp.MustCompile(`\b[2-9]\d{3}[\s-]?\d{4}[\s-]?\d{4}\b`),
			Category:    CategoryPII,
			Severity:    SeverityCritical,
			Confidence:  0.85,
			Validator:   aadhaarCheck,
			Description: "Indian Aadhaar number (12 digits)",
		},
		{
			Name:        "pan_number",
			Pattern:     regexp.MustCompile(`\b[A-Z]{5}\d{4}[A-Z]\b`),
			Category:    CategoryPII,
			Severity:    SeverityHigh,
			Confidence:  0.90,
			Validator:   panCheck,
			Description: "Indian PAN card number",
		},
		{
			Name:        "ssn",
			Pattern:     regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
			Category:    CategoryPII,
			Severity:    SeverityCritical,
			Confidence:  0.90,
			Validator:   ssnCheck,
			Description: "US Social Security Number",
		},
		{
			Name:        "email_address",
			Pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
			Category:    CategoryPII,
			Severity:    SeverityMedium,
			Confidence:  0.95,
			Description: "Email address",
		},
		{
			Name:        "phone_number",
			Pattern:     regexp.MustCompile(`\b(?:\+?1[-.\s]?)?(?:\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}\b`),
			Category:    CategoryPII,
			Severity:    SeverityMedium,
			Confidence:  0.60,
			Description: "US/IN phone number",
		},
		{
			Name:        "indian_phone",
			Pattern:     regexp.MustCompile(`\b(?:\+91[-.\s]?)?[6-9]\d{4}[-.\s]?\d{5}\b`),
			Category:    CategoryPII,
			Severity:    SeverityMedium,
			Confidence:  0.75,
			Description: "Indian mobile number",
		},

		// ── API Keys & Tokens ──
		{
			Name:        "openai_api_key",
			Pattern:     regexp.MustCompile(`\bsk-[a-zA-Z0-9]{20,}\b`),
			Category:    CategoryAPIKey,
			Severity:    SeverityCritical,
			Confidence:  0.95,
			Description: "OpenAI API key",
		},
		{
			Name:        "aws_access_key",
			Pattern:     regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
			Category:    CategoryAPIKey,
			Severity:    SeverityCritical,
			Confidence:  0.95,
			Description: "AWS Access Key ID",
		},
		{
			Name:        "aws_secret_key",
			Pattern:     regexp.MustCompile(`\b[A-Za-z0-9/+=]{40}\b`),
			Category:    CategoryAPIKey,
			Severity:    SeverityCritical,
			Confidence:  0.50,
			Validator:   highEntropy,
			Description: "AWS Secret Access Key (high-entropy 40-char)",
		},
		{
			Name:        "github_token",
			Pattern:     regexp.MustCompile(`\b(?:ghp|gho|ghu|ghs|ghr)_[a-zA-Z0-9]{36,}\b`),
			Category:    CategoryAPIKey,
			Severity:    SeverityCritical,
			Confidence:  0.95,
			Description: "GitHub personal/OAuth token",
		},
		{
			Name:        "slack_token",
			Pattern:     regexp.MustCompile(`\bxox[bpras]-[a-zA-Z0-9-]{10,}\b`),
			Category:    CategoryAPIKey,
			Severity:    SeverityHigh,
			Confidence:  0.95,
			Description: "Slack API token",
		},
		{
			Name:        "google_api_key",
			Pattern:     regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{35}\b`),
			Category:    CategoryAPIKey,
			Severity:    SeverityHigh,
			Confidence:  0.90,
			Description: "Google API key",
		},
		{
			Name:        "stripe_key",
			Pattern:     regexp.MustCompile(`\b[sr]k_(?:live|test)_[a-zA-Z0-9]{20,}\b`),
			Category:    CategoryAPIKey,
			Severity:    SeverityCritical,
			Confidence:  0.95,
			Description: "Stripe API key",
		},
		{
			Name:        "jwt_token",
			Pattern:     regexp.MustCompile(`\beyJ[a-zA-Z0-9_\-]*\.eyJ[a-zA-Z0-9_\-]*\.[a-zA-Z0-9_\-]+\b`),
			Category:    CategoryToken,
			Severity:    SeverityHigh,
			Confidence:  0.95,
			Description: "JSON Web Token",
		},
		{
			Name:        "bearer_token",
			Pattern:     regexp.MustCompile(`(?i)(?:bearer|token|authorization)[\s:=]+['"]?([a-zA-Z0-9_\-.]{20,})['"]?`),
			Category:    CategoryToken,
			Severity:    SeverityHigh,
			Confidence:  0.70,
			Description: "Bearer/Authorization token in header",
		},

		// ── Database connection strings ──
		{
			Name:        "postgres_connection",
			Pattern:     regexp.MustCompile(`(?i)postgres(?:ql)?://[^\s'"]{10,}`),
			Category:    CategoryDBConnection,
			Severity:    SeverityCritical,
			Confidence:  0.95,
			Description: "PostgreSQL connection string",
		},
		{
			Name:        "mysql_connection",
			Pattern:     regexp.MustCompile(`(?i)mysql(?:\+\w+)?://[^\s'"]{10,}`),
			Category:    CategoryDBConnection,
			Severity:    SeverityCritical,
			Confidence:  0.95,
			Description: "MySQL connection string",
		},
		{
			Name:        "mongodb_connection",
			Pattern:     regexp.MustCompile(`(?i)mongodb(?:\+srv)?://[^\s'"]{10,}`),
			Category:    CategoryDBConnection,
			Severity:    SeverityCritical,
			Confidence:  0.95,
			Description: "MongoDB connection string",
		},
		{
			Name:        "redis_connection",
			Pattern:     regexp.MustCompile(`(?i)redis://[^\s'"]{5,}`),
			Category:    CategoryDBConnection,
			Severity:    SeverityHigh,
			Confidence:  0.90,
			Description: "Redis connection string",
		},
		{
			Name:        "generic_connection_string",
			Pattern:     regexp.MustCompile(`(?i)(?:Data Source|Server|Host)=[^;]+;(?:.*?(?:Password|Pwd)=[^;]+)`),
			Category:    CategoryDBConnection,
			Severity:    SeverityCritical,
			Confidence:  0.85,
			Description: "ADO.NET / ODBC connection string with password",
		},

		// ── Internal URLs / private IPs ──
		{
			Name: "private_ipv4",
			Pattern: regexp.MustCompile(
				`\b(?:10\.\d{1,3}\.\d{1,3}\.\d{1,3}|172\.(?:1[6-9]|2\d|3[01])\.\d{1,3}\.\d{1,3}|192\.168\.\d{1,3}\.\d{1,3})\b`,
			),
			Category:    CategoryInternalURL,
			Severity:    SeverityMedium,
			Confidence:  0.80,
			Description: "RFC1918 private IPv4 address",
		},
		{
			Name:        "internal_url",
			Pattern:     regexp.MustCompile(`(?i)https?://[a-z0-9.\-]*\.(?:internal|corp|local|intranet|private|staging|dev)\b[^\s]*`),
			Category:    CategoryInternalURL,
			Severity:    SeverityHigh,
			Confidence:  0.90,
			Description: "Internal/corporate URL",
		},

		// ── Financial ──
		{
			Name:        "credit_card",
			Pattern:     regexp.MustCompile(`\b(?:4\d{3}|5[1-5]\d{2}|3[47]\d{2}|6(?:011|5\d{2}))[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{3,4}\b`),
			Category:    CategoryFinancial,
			Severity:    SeverityCritical,
			Confidence:  0.85,
			Validator:   luhnCheck,
			Description: "Credit/debit card number",
		},
		{
			Name:        "iban",
			Pattern:     regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z0-9]{4}\d{7}(?:[A-Z0-9]?\d{0,16})?\b`),
			Category:    CategoryFinancial,
			Severity:    SeverityHigh,
			Confidence:  0.80,
			Description: "International Bank Account Number",
		},
		{
			Name:        "indian_bank_account",
			Pattern:     regexp.MustCompile(`\b\d{9,18}\b`),
			Category:    CategoryFinancial,
			Severity:    SeverityLow,
			Confidence:  0.20,
			Description: "Potential Indian bank account number (needs context); intentionally noisy — consumers rely on this low confidence for diversity/severity boosts rather than standalone action",
		},

		// ── Credentials ──
		{
			Name:        "password_in_text",
			Pattern:     regexp.MustCompile(`(?i)(?:password|passwd|pwd|secret|token)\s*[:=]\s*['"]?([^\s'"]{8,})['"]?`),
			Category:    CategoryCredential,
			Severity:    SeverityCritical,
			Confidence:  0.80,
			Description: "Password or secret in plaintext assignment",
		},
		{
			Name:        "private_key_header",
			Pattern:     regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`),
			Category:    CategoryCredential,
			Severity:    SeverityCritical,
			Confidence:  0.99,
			Description: "Private key PEM header",
		},
	}
}
