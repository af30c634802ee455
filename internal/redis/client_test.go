package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/SogeMoge/xwsbot/internal/errors"
	"github.com/SogeMoge/xwsbot/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *ClientTestSuite) TestNewClient() {
	testCases := []struct {
		name     string
		endpoint func() string
		opts     *redis.Options
		wantErr  bool
	}{
		{
			name:     "connects to endpoint",
			endpoint: func() string { return s.mr.Addr() },
		},
		{
			name:     "applies pool options",
			endpoint: func() string { return s.mr.Addr() },
			opts:     &redis.Options{PoolSize: 4, MinIdleConns: 1},
		},
		{
			name:     "empty endpoint",
			endpoint: func() string { return "" },
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := redis.NewClient(tc.endpoint(), tc.opts)
			if tc.wantErr {
				s.Error(err)
				s.True(errors.IsInvalidArgument(err))
				s.Nil(client)
				return
			}
			s.Require().NoError(err)
			defer client.Close()
			s.NoError(client.Ping(context.Background()).Err())
		})
	}
}

func (s *ClientTestSuite) TestNewClientFromURL() {
	testCases := []struct {
		name    string
		url     func() string
		wantErr bool
	}{
		{
			name: "redis url",
			url:  func() string { return "redis://" + s.mr.Addr() + "/0" },
		},
		{
			name:    "empty url",
			url:     func() string { return "" },
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			url:     func() string { return "mongodb://localhost:27017" },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, err := redis.NewClientFromURL(tc.url(), nil)
			if tc.wantErr {
				s.Error(err)
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			defer client.Close()

			ctx := context.Background()
			s.Require().NoError(client.Set(ctx, "k", "v", 0).Err())
			got, err := client.Get(ctx, "k").Result()
			s.NoError(err)
			s.Equal("v", got)
		})
	}
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
