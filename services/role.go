package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

/*
* Roles carry the module/access privileges the authorization middleware checks
 */
func validateRoleData(data map[string]interface{}) (string, []map[string]interface{}, error) {
	roleNameRaw, ok := data["roleName"].(string)
	if !ok || strings.TrimSpace(roleNameRaw) == "" {
		return "", nil, errors.New("roleName cannot be empty")
	}
	roleName := strings.ToUpper(strings.TrimSpace(roleNameRaw))

	privList, ok := data["privileges"].([]interface{})
	if !ok || len(privList) == 0 {
		return "", nil, errors.New("privileges cannot be empty")
	}

	privileges := make([]map[string]interface{}, 0, len(privList))
	moduleSet := make(map[string]bool)
	for i, p := range privList {
		item, ok := p.(map[string]interface{})
		if !ok {
			return "", nil, fmt.Errorf("invalid privilege at index %d", i)
		}
		module, ok := item["module"].(string)
		if !ok || strings.TrimSpace(module) == "" {
			return "", nil, fmt.Errorf("module cannot be empty at index %d", i)
		}
		module = strings.TrimSpace(module)
		if moduleSet[module] {
			return "", nil, fmt.Errorf("duplicate module found: %s", module)
		}
		moduleSet[module] = true
		item["module"] = module

		accessListRaw, ok := item["access"].([]interface{})
		if !ok || len(accessListRaw) == 0 {
			return "", nil, fmt.Errorf("access list cannot be empty for module %s", module)
		}
		for _, a := range accessListRaw {
			str, ok := a.(string)
			if !ok || strings.TrimSpace(str) == "" {
				return "", nil, fmt.Errorf("invalid access value for module %s", module)
			}
		}
		privileges = append(privileges, item)
	}

	return roleName, privileges, nil
}

/*
* Validate the role payload
* Generate a roleCode and save the document
 */
func CreateRole(c *gin.Context, data map[string]interface{}) (role.Role, error) {
	var created role.Role

	roleName, privileges, err := validateRoleData(data)
	if err != nil {
		log.Println("Error from validateRoleData: ", err)
		return created, err
	}

	collection := db.OpenCollections(models.RoleCollection)
	existing := make(map[string]interface{})
	if err := db.FindOne(c, collection, bson.M{"roleName": roleName}, &existing); err == nil {
		return created, errors.New("role already exists")
	}

	roleCode, err := common.GenerateEmpCode(models.RoleCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return created, err
	}

	created = role.Role{
		RoleName:   roleName,
		RoleCode:   roleCode,
		Privileges: privileges,
		CreatedAt:  time.Now(),
		CreatedBy:  roleCode,
		UpdatedAt:  time.Now(),
		UpdatedBy:  roleCode,
	}
	inserted, err := db.CreateOne(c, collection, created)
	if err != nil {
		log.Println("Error from createOne(role): ", err)
		return created, err
	}
	log.Println("Inserted role: ", inserted.InsertedID)

	if err := redis.SetCache(c, models.RoleKey+roleCode, created); err != nil {
		log.Println("Failed caching role: ", err)
	}
	return created, nil
}

func ReadRoles(c *gin.Context) ([]interface{}, error) {
	collection := db.OpenCollections(models.RoleCollection)
	roles, err := db.FindAll(c, collection, bson.M{}, nil)
	if err != nil {
		log.Println("Error from findAll(roles): ", err)
		return nil, err
	}
	return roles, nil
}
