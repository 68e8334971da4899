package ledger

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/kasbuku/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// builtinDefaults maps well-known category names to the account codes
// used by the standard chart of accounts seed. The keys are glob
// patterns, matching is case sensitive.
var builtinDefaults = map[string]string{
	"Invoice Payment": "2-1300",
	"Maintenance":     "5-2000",
}

// DefaultCategoryAccounts returns the category default configuration for
// the resolver.
//
// DEFAULT_CATEGORY_ACCOUNTS overrides the built-in map. The format is
// semicolon separated "pattern=account-code" pairs, e.g.
// "Invoice Payment=2-1300;Rent*=2-1400".
func DefaultCategoryAccounts() map[string]string {
	env, ok := os.LookupEnv("DEFAULT_CATEGORY_ACCOUNTS")
	if !ok {
		return builtinDefaults
	}

	defaults := make(map[string]string)
	for _, pair := range strings.Split(env, ";") {
		pattern, code, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		defaults[strings.TrimSpace(pattern)] = strings.TrimSpace(code)
	}

	return defaults
}

// Resolver resolves free-text transaction categories to ledger accounts.
type Resolver struct {
	// defaults maps category glob patterns to account codes. It is
	// injected so that the well-known codes are configuration, not
	// string literals in the resolution logic.
	defaults map[string]string

	// patterns holds the keys of defaults in sorted order so that
	// resolution is deterministic when several patterns match.
	patterns []string
}

// NewResolver creates a Resolver with the given category defaults.
func NewResolver(defaults map[string]string) *Resolver {
	patterns := make([]string, 0, len(defaults))
	for pattern := range defaults {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	return &Resolver{
		defaults: defaults,
		patterns: patterns,
	}
}

// Resolve resolves a category to an account. First match wins:
//
//  1. An entry for the exact category in the manual mappings. The
//     resolution is persisted as a CategoryMapping so it is remembered.
//  2. A persisted CategoryMapping for the exact category.
//  3. A configured category default. Defaults are not persisted, they
//     stay overridable by a later manual mapping.
//
// If nothing matches, ErrUnresolvedCategory is returned.
func (r *Resolver) Resolve(db *gorm.DB, category string, manual map[string]uuid.UUID) (models.Account, error) {
	category = strings.TrimSpace(category)

	if accountID, ok := manual[category]; ok {
		var account models.Account
		err := db.First(&account, "id = ?", accountID).Error
		if err != nil {
			return models.Account{}, err
		}

		// Learning step: remember the manual resolution. Idempotent if a
		// mapping for the category already exists.
		err = models.SaveCategoryMapping(db, category, account.ID)
		if err != nil {
			return models.Account{}, err
		}

		return account, nil
	}

	return r.resolveExisting(db, category)
}

// resolveExisting runs the resolution steps that do not learn: the
// persisted mappings and the configured defaults.
func (r *Resolver) resolveExisting(db *gorm.DB, category string) (models.Account, error) {
	mapping, err := models.CategoryMappingFor(db, category)
	if err == nil {
		var account models.Account
		err = db.First(&account, "id = ?", mapping.AccountID).Error
		if err != nil {
			return models.Account{}, err
		}

		return account, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Account{}, err
	}

	// An exact default wins over glob patterns
	if code, ok := r.defaults[category]; ok {
		return models.AccountByCode(db, code)
	}

	for _, pattern := range r.patterns {
		if glob.Glob(pattern, category) {
			return models.AccountByCode(db, r.defaults[pattern])
		}
	}

	return models.Account{}, fmt.Errorf("%w %q", ErrUnresolvedCategory, category)
}

// UnresolvedCategories returns every distinct category of finance
// transactions that have no journal entry yet and that does not resolve
// via a persisted mapping or a configured default.
//
// This drives the operator workflow of picking accounts for leftover
// categories.
func (r *Resolver) UnresolvedCategories(db *gorm.DB) ([]string, error) {
	categories, err := models.UnsyncedCategories(db)
	if err != nil {
		return nil, err
	}

	unresolved := make([]string, 0)
	for _, category := range categories {
		_, err := r.resolveExisting(db, category)
		if errors.Is(err, ErrUnresolvedCategory) {
			unresolved = append(unresolved, category)
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	return unresolved, nil
}
