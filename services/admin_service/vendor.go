package admin_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bazaar-go-admin/db"
	"bazaar-go-admin/inout"
	"bazaar-go-admin/model"
	"bazaar-go-admin/model/admin_model"
	"bazaar-go-admin/model/market_model"
	"bazaar-go-admin/mongodb"
	"bazaar-go-admin/services"
	"bazaar-go-admin/services/public_service"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

var (
	ErrVendorNotFound  = errors.New("商家不存在")
	ErrSlugTaken       = errors.New("商家标识已被占用")
	ErrUserNotFound    = errors.New("用户不存在")
	ErrAlreadyAssigned = errors.New("该用户已绑定其他商家")
)

type VendorService struct{}

func vendorColl() *mongo.Collection {
	return mongodb.GetCollection("marketplace", "vendors")
}

// GetVendorList 商家列表，默认只返回在营商家
func (s *VendorService) GetVendorList(ctx context.Context, params inout.VendorListReq) ([]market_model.Vendor, error) {
	filter := bson.M{}
	if params.ActiveOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := vendorColl().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("查询商家列表失败: %w", err)
	}
	defer cursor.Close(ctx)

	vendors := []market_model.Vendor{}
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, fmt.Errorf("解码商家列表失败: %w", err)
	}
	return vendors, nil
}

// GetVendorDetail 商家详情
func (s *VendorService) GetVendorDetail(ctx context.Context, id string) (*market_model.Vendor, error) {
	var vendor market_model.Vendor
	err := vendorColl().FindOne(ctx, bson.M{"_id": id}).Decode(&vendor)
	if err == mongo.ErrNoDocuments {
		return nil, ErrVendorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询商家失败: %w", err)
	}
	return &vendor, nil
}

// CreateVendor 创建商家，slug 全局唯一
func (s *VendorService) CreateVendor(ctx context.Context, actor *Actor, params inout.VendorCreateReq) (*market_model.Vendor, error) {
	count, err := vendorColl().CountDocuments(ctx, bson.M{"slug": params.Slug})
	if err != nil {
		return nil, fmt.Errorf("校验商家标识失败: %w", err)
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	vendor := market_model.Vendor{
		Id:          uuid.New().String(),
		Name:        params.Name,
		Slug:        params.Slug,
		Description: params.Description,
		LogoUrl:     params.LogoUrl,
		IsActive:    true,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := vendorColl().InsertOne(ctx, vendor); err != nil {
		return nil, fmt.Errorf("创建商家失败: %w", err)
	}

	services.PublishAudit(model.AuditEvent{
		EventType: model.AuditVendorCreated,
		ActorId:   actor.Uid,
		ActorRole: actor.Role,
		TargetId:  vendor.Id,
		Detail:    vendor.Name,
	})
	public_service.Hub.NotifyRefresh("global", "vendor_created")

	return &vendor, nil
}

// UpdateVendor 更新商家信息，零值字段不更新
func (s *VendorService) UpdateVendor(ctx context.Context, actor *Actor, id string, params inout.VendorUpdateReq) error {
	set := bson.M{}
	if params.Name != "" {
		set["name"] = params.Name
	}
	if params.Description != "" {
		set["description"] = params.Description
	}
	if params.LogoUrl != "" {
		set["logo_url"] = params.LogoUrl
	}
	if len(set) == 0 {
		return nil
	}

	result, err := vendorColl().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("更新商家失败: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrVendorNotFound
	}

	services.PublishAudit(model.AuditEvent{
		EventType: model.AuditVendorUpdated,
		ActorId:   actor.Uid,
		ActorRole: actor.Role,
		TargetId:  id,
	})
	public_service.Hub.NotifyRefresh("vendor:"+id, "vendor_updated")

	return nil
}

// DeactivateVendor 下线商家，保留历史订单与商品记录
func (s *VendorService) DeactivateVendor(ctx context.Context, actor *Actor, id string) error {
	result, err := vendorColl().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return fmt.Errorf("下线商家失败: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrVendorNotFound
	}

	services.PublishAudit(model.AuditEvent{
		EventType: model.AuditVendorDeleted,
		ActorId:   actor.Uid,
		ActorRole: actor.Role,
		TargetId:  id,
	})
	public_service.Hub.NotifyRefresh("global", "vendor_deactivated")

	return nil
}

// ListAdmins 商家当前绑定的管理员列表
func (s *VendorService) ListAdmins(ctx context.Context, vendorId string) ([]inout.VendorAdminItem, error) {
	if _, err := s.GetVendorDetail(ctx, vendorId); err != nil {
		return nil, err
	}

	var bindings []admin_model.VendorAdmin
	if err := db.Dao.Where("vendor_id = ?", vendorId).Find(&bindings).Error; err != nil {
		return nil, fmt.Errorf("查询商家绑定失败: %w", err)
	}

	userIds := make([]int, 0, len(bindings))
	for _, b := range bindings {
		userIds = append(userIds, b.UserId)
	}

	userById := make(map[int]model.User, len(userIds))
	if len(userIds) > 0 {
		var users []model.User
		if err := db.Dao.Where("id IN ?", userIds).Find(&users).Error; err != nil {
			return nil, fmt.Errorf("查询用户失败: %w", err)
		}
		for _, u := range users {
			userById[u.Id] = u
		}
	}

	result := make([]inout.VendorAdminItem, 0, len(bindings))
	for _, b := range bindings {
		item := inout.VendorAdminItem{
			UserId:  b.UserId,
			BoundAt: b.CreateTime.UTC().Format(time.RFC3339),
		}
		if u, ok := userById[b.UserId]; ok {
			item.Username = u.Username
			item.FullName = u.FullName
			item.Email = u.Email
		}
		result = append(result, item)
	}
	return result, nil
}

// AssignAdmin 把用户绑定为商家管理员，同时把用户角色切到 vendor_admin
func (s *VendorService) AssignAdmin(ctx context.Context, actor *Actor, vendorId string, params inout.AssignVendorAdminReq) error {
	if _, err := s.GetVendorDetail(ctx, vendorId); err != nil {
		return err
	}

	return db.Dao.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, params.UserId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("查询用户失败: %w", err)
		}

		var existing admin_model.VendorAdmin
		err := tx.Where("user_id = ?", params.UserId).First(&existing).Error
		if err == nil {
			if existing.VendorId == vendorId {
				return nil
			}
			return ErrAlreadyAssigned
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("查询商家绑定失败: %w", err)
		}

		binding := admin_model.VendorAdmin{
			UserId:     params.UserId,
			VendorId:   vendorId,
			CreateTime: time.Now(),
		}
		if err := tx.Create(&binding).Error; err != nil {
			return fmt.Errorf("创建商家绑定失败: %w", err)
		}

		if err := tx.Model(&user).Update("role", model.RoleVendorAdmin).Error; err != nil {
			return fmt.Errorf("更新用户角色失败: %w", err)
		}

		services.PublishAudit(model.AuditEvent{
			EventType: model.AuditVendorAdminBound,
			ActorId:   actor.Uid,
			ActorRole: actor.Role,
			TargetId:  vendorId,
			Detail:    fmt.Sprintf("user_id=%d", params.UserId),
		})
		return nil
	})
}

// RemoveAdmin 解除商家管理员绑定，用户角色退回 customer
func (s *VendorService) RemoveAdmin(ctx context.Context, actor *Actor, vendorId string, userId int) error {
	return db.Dao.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND vendor_id = ?", userId, vendorId).Delete(&admin_model.VendorAdmin{})
		if result.Error != nil {
			return fmt.Errorf("删除商家绑定失败: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		if err := tx.Model(&model.User{}).Where("id = ?", userId).
			Update("role", model.RoleCustomer).Error; err != nil {
			return fmt.Errorf("更新用户角色失败: %w", err)
		}

		services.PublishAudit(model.AuditEvent{
			EventType: model.AuditVendorAdminRemoved,
			ActorId:   actor.Uid,
			ActorRole: actor.Role,
			TargetId:  vendorId,
			Detail:    fmt.Sprintf("user_id=%d", userId),
		})
		return nil
	})
}
