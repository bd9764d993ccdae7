/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package notify

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/suite"
)

type FeedTestSuite struct {
	suite.Suite
	clock *clock.Mock
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedTestSuite))
}

func (suite *FeedTestSuite) SetupTest() {
	suite.clock = clock.NewMock()
}

func (suite *FeedTestSuite) TestNotifyAssignsSequence() {
	feed := NewFeed(10, suite.clock)

	feed.Notify(LevelInfo, "Autonomous sequence started", "")
	suite.clock.Add(time.Second)
	feed.Notify(LevelError, `Failed to execute "Forward"`, "node-1")

	items := feed.List(0)
	suite.Len(items, 2)
	suite.Equal(uint64(1), items[0].Seq)
	suite.Equal(LevelInfo, items[0].Level)
	suite.Equal(uint64(2), items[1].Seq)
	suite.Equal("node-1", items[1].NodeID)
	suite.Equal(suite.clock.Now(), items[1].Time)
	suite.Equal(uint64(2), feed.LastSeq())
}

func (suite *FeedTestSuite) TestListSince() {
	feed := NewFeed(10, suite.clock)
	for i := 0; i < 5; i++ {
		feed.Notify(LevelInfo, "tick", "")
	}

	items := feed.List(3)

	suite.Len(items, 2)
	suite.Equal(uint64(4), items[0].Seq)
	suite.Empty(feed.List(5))
}

func (suite *FeedTestSuite) TestCapacityEvictsOldest() {
	feed := NewFeed(3, suite.clock)
	for i := 0; i < 5; i++ {
		feed.Notify(LevelWarning, "tick", "")
	}

	items := feed.List(0)

	suite.Len(items, 3)
	suite.Equal(uint64(3), items[0].Seq)
	suite.Equal(uint64(5), items[2].Seq)
}

func (suite *FeedTestSuite) TestDefaultCapacity() {
	feed := NewFeed(0, suite.clock)

	suite.Equal(DefaultCapacity, feed.capacity)
}
