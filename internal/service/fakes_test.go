package service

import (
	"Pulse/internal/model"
	"Pulse/internal/repository"
	"context"
	"time"
)

// fakeMessageRepo 内存实现，只填测试关心的字段
type fakeMessageRepo struct {
	messages []*model.Message
	counts   []repository.UserCount
	matches  []*model.Message
	epochs   []string
	total    int64
}

func (f *fakeMessageRepo) List(_ context.Context, _ string, _ bool, skip, take int) ([]*model.Message, error) {
	if skip >= len(f.messages) {
		return []*model.Message{}, nil
	}
	end := len(f.messages)
	// 与 SQL 层一致：take<0 不限制，==0 空页
	if take >= 0 && skip+take < end {
		end = skip + take
	}
	return f.messages[skip:end], nil
}

func (f *fakeMessageRepo) Count(context.Context) (int64, error) {
	return int64(len(f.messages)), nil
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id uint64) (*model.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMessageRepo) Create(_ context.Context, message *model.Message) error {
	message.ID = uint64(len(f.messages) + 1)
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) Update(context.Context, *model.Message) error {
	return nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id uint64) error {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeMessageRepo) CountByUser(context.Context, *time.Time, *repository.GroupOpts) ([]repository.UserCount, error) {
	return f.counts, nil
}

func (f *fakeMessageRepo) CountGroups(context.Context, *time.Time) (int64, error) {
	return f.total, nil
}

func (f *fakeMessageRepo) CountBetweenEpoch(context.Context, string, string) (int64, error) {
	return f.total, nil
}

func (f *fakeMessageRepo) ListEpochByUser(context.Context, uint64, string, string) ([]string, error) {
	return f.epochs, nil
}

func (f *fakeMessageRepo) CountMatchingByUser(context.Context, string, time.Time) ([]repository.UserCount, error) {
	return f.counts, nil
}

func (f *fakeMessageRepo) ListMatchingByUser(context.Context, uint64, string, time.Time) ([]*model.Message, error) {
	return f.matches, nil
}

// fakeUserRepo 内存用户表
type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) FindAll(context.Context) ([]*model.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByIDs(_ context.Context, ids []uint64) ([]*model.User, error) {
	found := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		for _, u := range f.users {
			if u.ID == id {
				found = append(found, u)
			}
		}
	}
	return found, nil
}

func (f *fakeUserRepo) FindBySlackID(_ context.Context, slackID string) (*model.User, error) {
	for _, u := range f.users {
		if u.SlackID == slackID {
			return u, nil
		}
	}
	return nil, nil
}

// fakeReactionRepo 预置分组计数
type fakeReactionRepo struct {
	counts []repository.UserCount
	epochs []string
	total  int64
}

func (f *fakeReactionRepo) CountByUser(context.Context, *time.Time, *repository.GroupOpts) ([]repository.UserCount, error) {
	return f.counts, nil
}

func (f *fakeReactionRepo) CountGroups(context.Context, *time.Time) (int64, error) {
	return f.total, nil
}

func (f *fakeReactionRepo) CountBetweenEpoch(context.Context, string, string) (int64, error) {
	return f.total, nil
}

func (f *fakeReactionRepo) ListEpochByUser(context.Context, uint64, string, string) ([]string, error) {
	return f.epochs, nil
}

// fakeFileRepo 预置分组计数
type fakeFileRepo struct {
	counts []repository.UserCount
	total  int64
}

func (f *fakeFileRepo) CountByUser(context.Context, *time.Time, *repository.GroupOpts) ([]repository.UserCount, error) {
	return f.counts, nil
}

func (f *fakeFileRepo) CountGroups(context.Context, *time.Time) (int64, error) {
	return f.total, nil
}

// fakeCommitRepo 录制查询条件，返回预置结果
type fakeCommitRepo struct {
	lastQuery *repository.CommitGroupQuery
	counts    []repository.CommitterCount
	total     int64
}

func (f *fakeCommitRepo) CountByCommitter(_ context.Context, q *repository.CommitGroupQuery) ([]repository.CommitterCount, error) {
	f.lastQuery = q
	return f.counts, nil
}

func (f *fakeCommitRepo) CountInWindow(context.Context, *time.Time) (int64, error) {
	return f.total, nil
}
