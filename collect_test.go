// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tgcorpus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kaa-nlp/tgcorpus/internal/state"
	"github.com/kaa-nlp/tgcorpus/types"
)

func TestSession_Collect(t *testing.T) {
	ctrl := gomock.NewController(t)
	mm := newMockMessenger(ctrl)
	mc := newMockCheckpointStore(ctrl)

	gomock.InOrder(
		mc.EXPECT().Load(gomock.Any(), "a").Return(int64(10), nil),
		mm.EXPECT().History(gomock.Any(), "a", int64(10), gomock.Any()).
			DoAndReturn(serve(msg(11, "Бүгин Нөкисте ҳаўа ашық болады"))),
		mc.EXPECT().Save(gomock.Any(), "a", int64(11)).Return(nil),

		mc.EXPECT().Load(gomock.Any(), "broken").Return(int64(5), nil),
		mm.EXPECT().History(gomock.Any(), "broken", int64(5), gomock.Any()).Return(assert.AnError),

		mc.EXPECT().Load(gomock.Any(), "quiet").Return(int64(20), nil),
		mm.EXPECT().History(gomock.Any(), "quiet", int64(20), gomock.Any()).DoAndReturn(serve()),

		mc.EXPECT().Load(gomock.Any(), "b").Return(int64(0), nil),
		mm.EXPECT().History(gomock.Any(), "b", int64(0), gomock.Any()).
			DoAndReturn(serve(msg(1, "Ертең жаўын жаўыўы мүмкин"), msg(2, "Аўылда егин жыйнаў басланды"))),
		mc.EXPECT().Save(gomock.Any(), "b", int64(2)).Return(nil),
	)

	s, err := New(mm, nil, mc)
	require.NoError(t, err)
	res, err := s.Collect(t.Context(), []string{"a", "broken", "quiet", "b"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Búgin Nókiste hawa ashıq boladı",
		"Erteń jawın jawıwı múmkin",
		"Awılda egin jıynaw baslandı",
	}, res.Batch)
	require.Len(t, res.Channels, 4)
	assert.Equal(t, 1, res.Failed())
	assert.ErrorIs(t, res.Channels[1].Err, assert.AnError)
	assert.Equal(t, int64(5), res.Channels[1].Mark)
	assert.Equal(t, int64(20), res.Channels[2].Mark)
	assert.Equal(t, 3, res.Stats.Accepted())
}

func TestSession_Collect_errors(t *testing.T) {
	t.Run("load fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mm := newMockMessenger(ctrl)
		mc := newMockCheckpointStore(ctrl)
		mc.EXPECT().Load(gomock.Any(), "a").Return(int64(0), assert.AnError)

		s, err := New(mm, nil, mc)
		require.NoError(t, err)
		_, err = s.Collect(t.Context(), []string{"a", "b"})
		assert.ErrorIs(t, err, assert.AnError)
	})
	t.Run("save fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mm := newMockMessenger(ctrl)
		mc := newMockCheckpointStore(ctrl)
		mc.EXPECT().Load(gomock.Any(), "a").Return(int64(0), nil)
		mm.EXPECT().History(gomock.Any(), "a", int64(0), gomock.Any()).
			DoAndReturn(serve(msg(1, "Бүгин Нөкисте ҳаўа ашық болады")))
		mc.EXPECT().Save(gomock.Any(), "a", int64(1)).Return(assert.AnError)

		s, err := New(mm, nil, mc)
		require.NoError(t, err)
		_, err = s.Collect(t.Context(), []string{"a", "b"})
		assert.ErrorIs(t, err, assert.AnError)
	})
	t.Run("cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mm := newMockMessenger(ctrl)
		mc := newMockCheckpointStore(ctrl)

		ctx, cancel := context.WithCancel(t.Context())
		mc.EXPECT().Load(gomock.Any(), "a").Return(int64(0), nil)
		mm.EXPECT().History(gomock.Any(), "a", int64(0), gomock.Any()).
			DoAndReturn(func(context.Context, string, int64, func([]types.RawMessage) error) error {
				cancel()
				return context.Canceled
			})

		s, err := New(mm, nil, mc)
		require.NoError(t, err)
		_, err = s.Collect(ctx, []string{"a", "b"})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestSession_Collect_tail(t *testing.T) {
	ctrl := gomock.NewController(t)
	mm := newMockMessenger(ctrl)
	mc := newMockCheckpointStore(ctrl)

	// no Load in the tail mode.
	mm.EXPECT().History(gomock.Any(), "a", int64(0), gomock.Any()).
		DoAndReturn(serve(
			msg(1, "Бүгин Нөкисте ҳаўа ашық болады"),
			msg(2, "Ертең жаўын жаўыўы мүмкин"),
			msg(3, "Аўылда егин жыйнаў басланды"),
		))
	mc.EXPECT().Save(gomock.Any(), "a", int64(3)).Return(nil)

	s, err := New(mm, nil, mc, WithTail(1))
	require.NoError(t, err)
	res, err := s.Collect(t.Context(), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Awılda egin jıynaw baslandı"}, res.Batch)
}

// TestCollect_endToEnd runs two collections against the real state
// database and a fake channel.
func TestCollect_endToEnd(t *testing.T) {
	db, err := state.Open(t.Context(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	fm := &fakeMessenger{
		channels: map[string][]types.RawMessage{
			"kaa": {
				msg(1, "hi"),
				msg(2, "Толығырақ мына жерде http://kun.uz оқың"),
				msg(3, "Бүгин Нөкисте ҳаўа ашық болады"),
			},
		},
		pageSize: 2,
	}

	s, err := New(fm, nil, db)
	require.NoError(t, err)

	res, err := s.Collect(t.Context(), []string{"kaa"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Búgin Nókiste hawa ashıq boladı"}, res.Batch)
	mark, err := db.Load(t.Context(), "kaa")
	require.NoError(t, err)
	assert.Equal(t, int64(3), mark)

	// second run, nothing new.
	res, err = s.Collect(t.Context(), []string{"kaa"})
	require.NoError(t, err)
	assert.Empty(t, res.Batch)
	mark, err = db.Load(t.Context(), "kaa")
	require.NoError(t, err)
	assert.Equal(t, int64(3), mark)

	// and nothing to publish.
	ur, err := s.Publish(t.Context(), res.Batch)
	require.NoError(t, err)
	assert.True(t, ur.Skipped)
}
