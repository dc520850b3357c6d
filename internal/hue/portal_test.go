package hue_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/hueportal/internal/hue"
	"github.com/wheelibin/hueportal/internal/logging"
)

func Test_Portal_Bridges(t *testing.T) {

	t.Run("should GET the discovery endpoint and decode descriptors", func(t *testing.T) {
		t.Parallel()

		// arrange
		fb := newFakeBridge(t, `[{"id":"001788fffe100491","internalipaddress":"10.0.0.5","port":443}]`)
		portal := hue.NewPortal(logging.Discard(), fb.transport(), fb.server.URL+"/discover")

		// act
		bridges, err := portal.Bridges(context.Background())

		// assert
		require.NoError(t, err)
		assert.Equal(t, []hue.BridgeDescriptor{{ID: "001788fffe100491", InternalIPAddress: "10.0.0.5", Port: 443}}, bridges)
		assert.Equal(t, []recordedRequest{{Method: http.MethodGet, Path: "/discover"}}, fb.recorded())
	})

	t.Run("invalid response: should fail", func(t *testing.T) {
		t.Parallel()

		fb := newFakeBridge(t, `not json`)
		portal := hue.NewPortal(logging.Discard(), fb.transport(), fb.server.URL)

		bridges, err := portal.Bridges(context.Background())

		assert.ErrorIs(t, err, hue.ErrInvalidResponse)
		assert.Nil(t, bridges)
	})

	t.Run("bridge handle: should be bound to the address", func(t *testing.T) {
		t.Parallel()

		portal := hue.NewPortal(logging.Discard(), nil, "")

		assert.Equal(t, "http://10.0.0.5/api", portal.Bridge("10.0.0.5").URL())
	})
}
