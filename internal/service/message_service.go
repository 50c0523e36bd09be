package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/repository"
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

// messageSortColumns 允许排序的字段与列名映射，白名单之外一律拒绝
var messageSortColumns = map[string]string{
	"id":          "id",
	"userId":      "user_id",
	"type":        "type",
	"timestamp":   "timestamp",
	"channelId":   "channel_id",
	"channelType": "channel_type",
	"eventTs":     "event_ts",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

type MessageService interface {
	GetList(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.MessageDTO, int64, bool, error)
	GetOne(ctx context.Context, id uint64) (*dto.MessageDTO, error)
	Create(ctx context.Context, req *dto.CreateMessageDTO) (*dto.MessageDTO, error)
	Update(ctx context.Context, id uint64, req *dto.UpdateMessageDTO) (*dto.MessageDTO, error)
	Delete(ctx context.Context, id uint64) (*dto.DeletedDTO, error)
}

type messageServiceImpl struct {
	messageRepo repository.MessageRepo
}

func NewMessageService(messageRepo repository.MessageRepo) MessageService {
	return &messageServiceImpl{messageRepo: messageRepo}
}

func (s *messageServiceImpl) GetList(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.MessageDTO, int64, bool, error) {
	orderBy := ""
	if q.Sort != "" {
		column, ok := messageSortColumns[q.Sort]
		if !ok {
			return nil, 0, false, ErrParamInvalid
		}
		orderBy = column
	}

	messages, err := s.messageRepo.List(ctx, orderBy, q.Desc(false), q.Skip(), q.Take())
	if err != nil {
		return nil, 0, false, err
	}

	total, err := s.messageRepo.Count(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	rows := make([]*dto.MessageDTO, 0, len(messages))
	for _, message := range messages {
		row := &dto.MessageDTO{}
		if err = copier.Copy(row, message); err != nil {
			return nil, 0, false, err
		}
		rows = append(rows, row)
	}
	return rows, total, q.HasNextPage(int(total)), nil
}

func (s *messageServiceImpl) GetOne(ctx context.Context, id uint64) (*dto.MessageDTO, error) {
	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}

	row := &dto.MessageDTO{}
	if err = copier.Copy(row, message); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *messageServiceImpl) Create(ctx context.Context, req *dto.CreateMessageDTO) (*dto.MessageDTO, error) {
	message := &model.Message{}
	if err := copier.Copy(message, req); err != nil {
		return nil, err
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		// 同一频道内 event_ts 唯一，Slack 事件重放直接拒绝
		if isDuplicateError(err) {
			return nil, ErrMessageDuplicate
		}
		return nil, err
	}

	row := &dto.MessageDTO{}
	if err := copier.Copy(row, message); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *messageServiceImpl) Update(ctx context.Context, id uint64, req *dto.UpdateMessageDTO) (*dto.MessageDTO, error) {
	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}

	applyMessageUpdate(message, req)
	if err = s.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}

	row := &dto.MessageDTO{}
	if err = copier.Copy(row, message); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *messageServiceImpl) Delete(ctx context.Context, id uint64) (*dto.DeletedDTO, error) {
	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}
	if err = s.messageRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeletedDTO{ID: id}, nil
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

// applyMessageUpdate 只覆盖请求里出现的字段
func applyMessageUpdate(message *model.Message, req *dto.UpdateMessageDTO) {
	if req.UserID != nil {
		message.UserID = *req.UserID
	}
	if req.Type != nil {
		message.Type = *req.Type
	}
	if req.Timestamp != nil {
		message.Timestamp = *req.Timestamp
	}
	if req.Text != nil {
		message.Text = req.Text
	}
	if req.ChannelID != nil {
		message.ChannelID = *req.ChannelID
	}
	if req.ChannelType != nil {
		message.ChannelType = *req.ChannelType
	}
	if req.EventTs != nil {
		message.EventTs = *req.EventTs
	}
	if req.ParentID != nil {
		message.ParentID = req.ParentID
	}
	if req.ThreadTs != nil {
		message.ThreadTs = req.ThreadTs
	}
}
