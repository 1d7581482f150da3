package impl

import (
	"testing"

	"rentora/internal/domain/entity"
	domainerrors "rentora/internal/domain/errors"
	"rentora/internal/domain/service"
	mockSvc "rentora/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredProvider(t *testing.T, name string) *mockSvc.MockMessageProvider {
	p := mockSvc.NewMockMessageProvider(t)
	p.EXPECT().IsConfigured().Return(true).Maybe()
	p.EXPECT().ProviderName().Return(name).Maybe()

	return p
}

func unconfiguredProvider(t *testing.T, name string) *mockSvc.MockMessageProvider {
	p := mockSvc.NewMockMessageProvider(t)
	p.EXPECT().IsConfigured().Return(false).Maybe()
	p.EXPECT().ProviderName().Return(name).Maybe()

	return p
}

func TestProviderSelector_SMSPrimaryWins(t *testing.T) {
	primary := configuredProvider(t, "sns")
	fallback := configuredProvider(t, "twilio")

	selector := NewProviderSelector(
		[]service.MessageProvider{primary, fallback},
		nil,
	)

	resolved, errs := selector.Resolve(entity.ChannelSMS, "")
	require.Len(t, resolved, 1)
	assert.Empty(t, errs)
	assert.Equal(t, "sns", resolved[0].Provider.ProviderName())
	assert.Equal(t, entity.ChannelSMS, resolved[0].Channel)
}

func TestProviderSelector_SMSFallsBack(t *testing.T) {
	primary := unconfiguredProvider(t, "sns")
	fallback := configuredProvider(t, "twilio")

	selector := NewProviderSelector(
		[]service.MessageProvider{primary, fallback},
		nil,
	)

	resolved, errs := selector.Resolve(entity.ChannelSMS, "")
	require.Len(t, resolved, 1)
	assert.Empty(t, errs)
	assert.Equal(t, "twilio", resolved[0].Provider.ProviderName())
}

func TestProviderSelector_OrganizationPreferenceReorders(t *testing.T) {
	sns := configuredProvider(t, "sns")
	twilio := configuredProvider(t, "twilio")

	selector := NewProviderSelector(
		[]service.MessageProvider{sns, twilio},
		nil,
	)

	resolved, errs := selector.Resolve(entity.ChannelSMS, "twilio")
	require.Len(t, resolved, 1)
	assert.Empty(t, errs)
	assert.Equal(t, "twilio", resolved[0].Provider.ProviderName())
}

func TestProviderSelector_NoSMSProviderConfigured(t *testing.T) {
	selector := NewProviderSelector(
		[]service.MessageProvider{unconfiguredProvider(t, "sns"), unconfiguredProvider(t, "twilio")},
		nil,
	)

	resolved, errs := selector.Resolve(entity.ChannelSMS, "")
	assert.Empty(t, resolved)
	require.Contains(t, errs, entity.ChannelSMS)

	var appErr domainerrors.AppError
	require.True(t, errors.As(errs[entity.ChannelSMS], &appErr))
	assert.Equal(t, "NO_PROVIDER_CONFIGURED", appErr.ErrorCode())
}

func TestProviderSelector_WhatsAppSingleProvider(t *testing.T) {
	whatsapp := configuredProvider(t, "whatsapp-cloud")

	selector := NewProviderSelector(nil, []service.MessageProvider{whatsapp})

	resolved, errs := selector.Resolve(entity.ChannelWhatsApp, "")
	require.Len(t, resolved, 1)
	assert.Empty(t, errs)
	assert.Equal(t, entity.ChannelWhatsApp, resolved[0].Channel)
}

func TestProviderSelector_BothLegsIndependent(t *testing.T) {
	sms := configuredProvider(t, "sns")

	// WhatsApp unconfigured: the SMS leg must still resolve.
	selector := NewProviderSelector(
		[]service.MessageProvider{sms},
		[]service.MessageProvider{unconfiguredProvider(t, "whatsapp-cloud")},
	)

	resolved, errs := selector.Resolve(entity.ChannelBoth, "")
	require.Len(t, resolved, 1)
	assert.Equal(t, entity.ChannelSMS, resolved[0].Channel)
	require.Contains(t, errs, entity.ChannelWhatsApp)
}

func TestProviderSelector_BothResolvesTwoLegs(t *testing.T) {
	selector := NewProviderSelector(
		[]service.MessageProvider{configuredProvider(t, "sns")},
		[]service.MessageProvider{configuredProvider(t, "whatsapp-cloud")},
	)

	resolved, errs := selector.Resolve(entity.ChannelBoth, "")
	require.Len(t, resolved, 2)
	assert.Empty(t, errs)
	assert.Equal(t, entity.ChannelSMS, resolved[0].Channel)
	assert.Equal(t, entity.ChannelWhatsApp, resolved[1].Channel)
}

func TestProviderSelector_UnknownChannel(t *testing.T) {
	selector := NewProviderSelector(nil, nil)

	resolved, errs := selector.Resolve(entity.NotificationChannel("CARRIER_PIGEON"), "")
	assert.Empty(t, resolved)
	assert.Len(t, errs, 1)
}
