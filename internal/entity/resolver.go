// Package entity finds domain-entity tokens in free text and resolves
// them into deep links and summary action chips. Resolution never
// blocks rendering: when the registry has no answer, a placeholder is
// emitted for later asynchronous resolution.
package entity

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/Prosono/HomeGPT/internal/model"
)

// tokenPattern matches entity ids of the shape <domain>.<identifier>:
// a lowercase domain word, a dot, then word/colon/hyphen characters.
var tokenPattern = regexp.MustCompile(`\b([a-z][a-z_]*)\.([A-Za-z0-9_:-]+)`)

// historyDomains are the domains whose entities carry continuous
// values; their references open the history view instead of the
// management view.
var historyDomains = map[string]bool{
	"sensor":        true,
	"binary_sensor": true,
	"climate":       true,
	"weather":       true,
}

type Resolver struct {
	cache *RegistryCache
}

func NewResolver(cache *RegistryCache) *Resolver {
	return &Resolver{cache: cache}
}

// Target returns the deep-link address for one entity token.
func Target(domain, entityID string) string {
	if historyDomains[domain] {
		return "/history?entity_id=" + url.QueryEscape(entityID)
	}
	return "/config/entities/edit/" + url.PathEscape(entityID)
}

// Annotate rewrites entity tokens in text into inert link markers and
// returns the references it resolved. The result is fully HTML-escaped
// and safe to embed in a document without further escaping.
func (r *Resolver) Annotate(text string) (string, []model.EntityReference) {
	matches := tokenPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return html.EscapeString(text), nil
	}

	var (
		out  strings.Builder
		refs []model.EntityReference
		last int
	)
	for _, m := range matches {
		start, end := m[0], m[1]
		token := text[start:end]
		domain := text[m[2]:m[3]]
		target := Target(domain, token)

		out.WriteString(html.EscapeString(text[last:start]))
		out.WriteString(`<a href="` + html.EscapeString(target) + `" data-domain="` + html.EscapeString(domain) + `">`)
		out.WriteString(html.EscapeString(token))
		out.WriteString(`</a>`)
		last = end

		refs = append(refs, model.EntityReference{
			RawToken: token,
			Domain:   domain,
			Target:   target,
		})
	}
	out.WriteString(html.EscapeString(text[last:]))
	return out.String(), refs
}

// Chips derives up to one edit-entity and one manage-device action
// chip from the identifier lists attached to a report. When no device
// id is supplied and the registry cache cannot resolve one, the device
// chip is a pending placeholder tagged with the entity id.
func (r *Resolver) Chips(entityIDs, deviceIDs []string) []model.ActionChip {
	entities := dedupe(entityIDs)
	devices := dedupe(deviceIDs)

	var chips []model.ActionChip
	if len(entities) > 0 {
		chips = append(chips, model.ActionChip{
			Kind:     model.ChipEditEntity,
			EntityID: entities[0],
			Target:   "/config/entities/edit/" + url.PathEscape(entities[0]),
		})
	}

	switch {
	case len(devices) > 0:
		chips = append(chips, deviceChip(devices[0], ""))
	case len(entities) > 0:
		if deviceID, ok := r.cache.Get(entities[0]); ok {
			chips = append(chips, deviceChip(deviceID, entities[0]))
		} else {
			chips = append(chips, model.ActionChip{
				Kind:     model.ChipManageDevice,
				EntityID: entities[0],
				Pending:  true,
			})
		}
	}
	return chips
}

func deviceChip(deviceID, entityID string) model.ActionChip {
	return model.ActionChip{
		Kind:     model.ChipManageDevice,
		EntityID: entityID,
		DeviceID: deviceID,
		Target:   "/config/devices/device/" + url.PathEscape(deviceID),
	}
}

func dedupe(ids []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
