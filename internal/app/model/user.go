package model

import (
	"time"
)

type UserRole string       // 사용자 권한 타입
type UserStatus string     // 가입 승인 상태
type MembershipTier string // 멤버십 등급

const (
	RoleUser  UserRole = "user"  // 일반 가맹점주
	RoleAdmin UserRole = "admin" // 본사 관리자

	StatusPending   UserStatus = "pending"   // 가입 신청 (승인 대기)
	StatusActive    UserStatus = "active"    // 승인 완료
	StatusSuspended UserStatus = "suspended" // 이용 정지

	MembershipNone    MembershipTier = "none"
	MembershipBasic   MembershipTier = "basic"
	MembershipPlus    MembershipTier = "plus"
	MembershipEgg120  MembershipTier = "egg120"
	MembershipPie120  MembershipTier = "pie120"
	MembershipCafe120 MembershipTier = "cafe120"
)

type User struct {
	ID            uint           `gorm:"primarykey" json:"id"`                              // 사용자 ID
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`                 // 이메일 (로그인 ID)
	PasswordHash  string         `gorm:"not null" json:"-"`                                 // 비밀번호 해시
	Name          string         `gorm:"not null" json:"name"`                              // 이름
	Role          UserRole       `gorm:"type:varchar(20);default:'user'" json:"role"`       // 권한
	Membership    MembershipTier `gorm:"type:varchar(20);default:'none'" json:"membership"` // 멤버십 등급
	Status        UserStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`  // 승인 상태
	BusinessName  string         `json:"business_name"`                                     // 상호명
	BusinessNo    string         `json:"business_no"`                                       // 사업자등록번호
	Phone         string         `json:"phone"`                                             // 전화번호
	Address       string         `json:"address"`                                           // 주소
	DetailAddress string         `json:"detail_address"`                                    // 상세주소
	Memo          string         `gorm:"type:text" json:"memo"`                             // 관리자 메모
	CreatedAt     time.Time      `json:"created_at"`                                        // 생성 시각
	UpdatedAt     time.Time      `json:"updated_at"`                                        // 수정 시각
}

func (User) TableName() string {
	return "users"
}
