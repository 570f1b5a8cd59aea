package client

import "github.com/Copysiter/O3GO-WA/client/types"

// DeviceOptions fetches the registered devices as select options (label plus
// device id), for populating select filters.
func (c *Client) DeviceOptions() ([]types.OptionStr, error) {
	var opts []types.OptionStr
	if err := c.getStaticURL(DEVICE_OPTIONS_URL, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// AccountTypeOptions enumerates the account type discriminators.
// The API does not serve these, so they are pinned client side.
func AccountTypeOptions() []types.OptionInt {
	return []types.OptionInt{
		{Text: "WhatsApp", Value: types.AccountTypeWhatsApp},
		{Text: "WhatsApp Business", Value: types.AccountTypeWhatsAppBusiness},
	}
}

// AccountStatusOptions enumerates the account/session status values.
func AccountStatusOptions() []types.OptionInt {
	return []types.OptionInt{
		{Text: types.AccountBanned.String(), Value: int(types.AccountBanned)},
		{Text: types.AccountAvailable.String(), Value: int(types.AccountAvailable)},
		{Text: types.AccountActive.String(), Value: int(types.AccountActive)},
		{Text: types.AccountPaused.String(), Value: int(types.AccountPaused)},
	}
}

// MessageStatusOptions enumerates the message delivery states.
func MessageStatusOptions() []types.OptionInt {
	return []types.OptionInt{
		{Text: types.MessageWaiting.String(), Value: int(types.MessageWaiting)},
		{Text: types.MessageCreated.String(), Value: int(types.MessageCreated)},
		{Text: types.MessageSent.String(), Value: int(types.MessageSent)},
		{Text: types.MessageDelivered.String(), Value: int(types.MessageDelivered)},
		{Text: types.MessageUndelivered.String(), Value: int(types.MessageUndelivered)},
		{Text: types.MessageFailed.String(), Value: int(types.MessageFailed)},
	}
}
