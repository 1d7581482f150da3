package impl

import (
	"rentora/internal/domain/entity"
	domainerrors "rentora/internal/domain/errors"
	"rentora/internal/domain/service"
)

// ChannelProvider pairs a concrete channel (never BOTH) with the provider
// that will serve it.
type ChannelProvider struct {
	Channel  entity.NotificationChannel
	Provider service.MessageProvider
}

// ProviderSelector maps a requested channel to configured providers.
// Resolution is side-effect free: it only inspects configuration status and
// never counts against quota.
type ProviderSelector struct {
	sms      []service.MessageProvider // deterministic fallback order
	whatsapp []service.MessageProvider // exactly one usable provider expected
}

// NewProviderSelector builds a selector from the registered providers.
// smsProviders carries the default preference order (preferred provider
// first); whatsappProviders normally holds a single entry.
func NewProviderSelector(smsProviders, whatsappProviders []service.MessageProvider) *ProviderSelector {
	return &ProviderSelector{
		sms:      smsProviders,
		whatsapp: whatsappProviders,
	}
}

// Resolve maps the requested channel to concrete deliveries. For BOTH, the
// SMS and WHATSAPP legs resolve independently and a failed leg lands in errs
// without blocking the other. preferredSMS (the organization's preference)
// reorders the SMS fallback list; an empty value keeps the default order.
func (s *ProviderSelector) Resolve(channel entity.NotificationChannel, preferredSMS string) (resolved []ChannelProvider, errs map[entity.NotificationChannel]error) {
	errs = make(map[entity.NotificationChannel]error)

	appendLeg := func(leg entity.NotificationChannel) {
		provider, err := s.resolveOne(leg, preferredSMS)
		if err != nil {
			errs[leg] = err

			return
		}
		resolved = append(resolved, ChannelProvider{Channel: leg, Provider: provider})
	}

	switch channel {
	case entity.ChannelSMS, entity.ChannelWhatsApp:
		appendLeg(channel)
	case entity.ChannelBoth:
		appendLeg(entity.ChannelSMS)
		appendLeg(entity.ChannelWhatsApp)
	default:
		errs[channel] = domainerrors.ErrChannelNotSupported.WithDetails("unknown channel: " + string(channel))
	}

	return resolved, errs
}

// resolveOne walks the provider list for one concrete channel,
// first-configured-wins.
func (s *ProviderSelector) resolveOne(channel entity.NotificationChannel, preferredSMS string) (service.MessageProvider, error) {
	var candidates []service.MessageProvider
	switch channel {
	case entity.ChannelSMS:
		candidates = orderByPreference(s.sms, preferredSMS)
	case entity.ChannelWhatsApp:
		candidates = s.whatsapp
	}

	for _, p := range candidates {
		if p != nil && p.IsConfigured() {
			return p, nil
		}
	}

	return nil, domainerrors.ErrNoProviderConfigured.WithDetails("no configured provider for channel " + string(channel))
}

// orderByPreference moves the named provider to the front, keeping the
// remaining fallback order intact.
func orderByPreference(providers []service.MessageProvider, preferred string) []service.MessageProvider {
	if preferred == "" {
		return providers
	}

	ordered := make([]service.MessageProvider, 0, len(providers))
	for _, p := range providers {
		if p != nil && p.ProviderName() == preferred {
			ordered = append(ordered, p)
		}
	}
	for _, p := range providers {
		if p == nil || p.ProviderName() != preferred {
			ordered = append(ordered, p)
		}
	}

	return ordered
}
