// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ec2tui/ec2tui/internal/aws"
)

// fakeClient returns canned instance lists or an error, in call order.
type fakeClient struct {
	lists [][]aws.Instance
	errs  []error
	calls int
}

func (f *fakeClient) ListInstances(context.Context) ([]aws.Instance, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.lists) {
		return f.lists[i], nil
	}
	return nil, nil
}

func (f *fakeClient) StartInstance(context.Context, string) error { return nil }
func (f *fakeClient) StopInstance(context.Context, string) error  { return nil }

func TestRefreshReplacesWholesale(t *testing.T) {
	client := &fakeClient{lists: [][]aws.Instance{
		{
			{ID: "i-0bbb", Name: "db", Type: "t3.small", State: "running", PrivateIP: "10.0.1.9"},
			{ID: "i-0aaa", Name: "web", Type: "t3.micro", State: "stopped", PublicIP: "54.0.0.1"},
		},
		{
			{ID: "i-0ccc", Name: "cache", Type: "t3.micro", State: "running"},
		},
	}}
	reg := New(client)

	got, err := reg.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "i-0aaa", got[0].ID, "sorted by id")
	assert.Equal(t, "i-0bbb", got[1].ID)

	// Second refresh replaces, never merges.
	got, err = reg.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "i-0ccc", got[0].ID)
}

func TestRefreshFailureKeepsPreviousRecords(t *testing.T) {
	client := &fakeClient{
		lists: [][]aws.Instance{
			{{ID: "i-0aaa", State: "running"}},
		},
		errs: []error{nil, &aws.FetchError{Err: context.DeadlineExceeded}},
	}
	reg := New(client)

	_, err := reg.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	_, err = reg.Refresh(context.Background())
	require.Error(t, err)

	var fetchErr *aws.FetchError
	assert.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 1, reg.Len(), "stale view preserved, no partial overwrite")

	rec, ok := reg.Find("i-0aaa")
	require.True(t, ok)
	assert.Equal(t, "running", rec.State)
}

func TestRecordsReturnsCopy(t *testing.T) {
	reg := New(&fakeClient{})
	reg.Apply([]aws.Instance{{ID: "i-0aaa", State: "running"}})

	got := reg.Records()
	got[0].State = "terminated"

	rec, ok := reg.Find("i-0aaa")
	require.True(t, ok)
	assert.Equal(t, "running", rec.State, "caller mutation must not leak in")
}

func TestRecordDisplayProjections(t *testing.T) {
	rec := Record{ID: "i-0abc123def", PublicIP: "54.12.33.201", PrivateIP: "10.0.1.17"}

	assert.Equal(t, "i-0******def", rec.DisplayID())
	assert.Equal(t, "xx.xx.xx.xxx", rec.DisplayPublicIP())
	assert.Equal(t, "xx.x.x.xx", rec.DisplayPrivateIP())
	assert.Empty(t, Record{}.DisplayPublicIP())
}
