package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/kizunaworks/backoffice/ent"
	"github.com/kizunaworks/backoffice/pkg/phone"
)

// ContactGeneratorConfig configures contact generation parameters
type ContactGeneratorConfig struct {
	OwnerID       int
	OwnerName     string
	Count         int
	StartDate     time.Time
	EndDate       time.Time
	ExternalRatio float64 // 0.0-1.0 (probability of carrying external call identity)
}

// Japanese-style restaurant and shop name parts used for company names
var companyNameParts = struct {
	Prefixes []string
	Suffixes []string
}{
	Prefixes: []string{"焼肉", "居酒屋", "寿司", "ラーメン", "炭火", "串焼き", "うどん", "そば", "鉄板焼", "海鮮"},
	Suffixes: []string{"きずな", "大将", "一番", "本店", "横丁", "太郎", "仲間", "のれん", "まる", "はなれ"},
}

// GenerateCompanyName creates a realistic restaurant name
func GenerateCompanyName() string {
	prefix := companyNameParts.Prefixes[rand.Intn(len(companyNameParts.Prefixes))]
	suffix := companyNameParts.Suffixes[rand.Intn(len(companyNameParts.Suffixes))]
	return prefix + suffix
}

// GeneratePhoneDigits creates a digits-only Japanese mobile number
func GeneratePhoneDigits() string {
	raw := fmt.Sprintf("090-%04d-%04d", rand.Intn(10000), rand.Intn(10000))
	return phone.NormalizeDigits(raw)
}

// GenerateContact creates one sales contact builder within the config window
func GenerateContact(client *ent.Client, config ContactGeneratorConfig) *ent.SalesContactCreate {
	window := config.EndDate.Sub(config.StartDate)
	occurredAt := config.StartDate.Add(time.Duration(rand.Int63n(int64(window))))

	create := client.SalesContact.Create().
		SetUserID(config.OwnerID).
		SetDate(occurredAt.Format("2006-01-02")).
		SetOccurredAt(occurredAt).
		SetManagerName(config.OwnerName).
		SetCompanyName(GenerateCompanyName()).
		SetPhone(GeneratePhoneDigits())

	if rand.Float64() < config.ExternalRatio {
		create.
			SetExternalCallID(fmt.Sprintf("%d", gofakeit.Number(100000, 999999))).
			SetExternalSource("cpi")
	}

	return create
}

// GenerateContacts creates multiple contact builders with the given config
func GenerateContacts(client *ent.Client, config ContactGeneratorConfig) []*ent.SalesContactCreate {
	contacts := make([]*ent.SalesContactCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		contacts[i] = GenerateContact(client, config)
	}
	return contacts
}

// BulkInsertContacts inserts contacts in batches for performance
func BulkInsertContacts(ctx context.Context, client *ent.Client, contacts []*ent.SalesContactCreate, batchSize int) error {
	for i := 0; i < len(contacts); i += batchSize {
		end := i + batchSize
		if end > len(contacts) {
			end = len(contacts)
		}

		batch := contacts[i:end]
		if err := client.SalesContact.CreateBulk(batch...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}
