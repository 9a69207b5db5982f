package services

import (
	"errors"
	"log"
	"strconv"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	jwt "github.com/KanapuramVaishnavi/Core/config/jwt"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
	"github.com/47farhad/WT-PROJ-HMS-sub000/role"
)

/*
* Generate a bcrypt based on the password given
 */
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

/*
* If match found then compare the input password and then the password found from the filtered document
 */
func verifyPassword(dbPassword string, inputPassword string) error {
	if dbPassword == "" {
		return errors.New("stored password missing or invalid")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(dbPassword), []byte(inputPassword)); err != nil {
		return errors.New(INCORRECT_PASSWORD)
	}
	return nil
}

func validateSignupInput(data map[string]interface{}) error {
	for _, f := range []string{"firstName", "lastName", "email", "password"} {
		if err := common.GetTrimmedString(data, f); err != nil {
			return err
		}
	}
	return nil
}

/*
* Validate the input fields given
* Check the email is not already registered
* Generate a code, hash the password and save the user
 */
func Signup(c *gin.Context, data map[string]interface{}, userType string) (string, error) {
	if err := validateSignupInput(data); err != nil {
		log.Println("Error from validateSignupInput: ", err)
		return "", err
	}

	collection := db.OpenCollections(models.UserCollection)
	existing := make(map[string]interface{})
	if err := db.FindOne(c, collection, bson.M{"email": data["email"]}, &existing); err == nil {
		return "", errors.New(EMAIL_ALREADY_REGISTERED)
	}

	code, err := common.GenerateEmpCode(models.UserCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return "", err
	}

	hash, err := HashPassword(data["password"].(string))
	if err != nil {
		log.Println("Error from hashPassword: ", err)
		return "", err
	}

	user := bson.M{
		"code":      code,
		"firstName": data["firstName"],
		"lastName":  data["lastName"],
		"email":     data["email"],
		"password":  hash,
		"userType":  userType,
		"isActive":  false,
		"createdAt": time.Now(),
		"createdBy": code,
		"updatedAt": time.Now(),
		"updatedBy": code,
	}
	for _, f := range []string{"phoneNo", "gender", "profilePicture"} {
		if v, ok := data[f].(string); ok && v != "" {
			user[f] = v
		}
	}
	if dob, ok := data["dob"].(string); ok && dob != "" {
		user["dob"] = dob
		age, err := common.CalculateAge(dob)
		if err != nil {
			log.Println("Error from CalculateAge")
			return "", err
		}
		user["age"] = strconv.Itoa(age)
	}

	inserted, err := db.CreateOne(c, collection, user)
	if err != nil {
		log.Println("Error from createOne(user): ", err)
		return "", err
	}
	log.Println("Inserted user: ", inserted.InsertedID)
	return code, nil
}

/*
* Admins onboard doctors and other admins
* The created account reuses the signup flow
 */
func CreateStaffUser(c *gin.Context, data map[string]interface{}) (string, error) {
	viewerRole, _, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}
	if viewerRole != role.Admin {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}
	if err := common.GetTrimmedString(data, "userType"); err != nil {
		log.Println("Error from getTrimmedString: ", err)
		return "", err
	}
	userType := data["userType"].(string)
	if userType != role.Doctor && userType != role.Admin {
		return "", errors.New(INVALID_USER_TO_ACCESS)
	}
	return Signup(c, data, userType)
}

/*
* Fetch the user document by email
* Verify password
* GenerateJWT
* Update the document with the token generated
 */
func Login(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	for _, f := range []string{"email", "password"} {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString: ", err)
			return nil, errors.New(PLEASE_PROVIDE_EMAIL_AND_PASSWORD)
		}
	}

	collection := db.OpenCollections(models.UserCollection)
	userDoc := make(map[string]interface{})
	if err := db.FindOne(c, collection, bson.M{"email": data["email"]}, &userDoc); err != nil {
		log.Println("Error from findOne(while fetching login user): ", err)
		return nil, errors.New("user not found")
	}

	code := userDoc["code"].(string)
	email := userDoc["email"].(string)
	userType, _ := userDoc["userType"].(string)
	dbPassword, _ := userDoc["password"].(string)

	if err := verifyPassword(dbPassword, data["password"].(string)); err != nil {
		log.Println("Error from verifyPassword: ", err)
		return nil, err
	}

	token, err := jwt.GenerateJWT(code, email, userType, models.UserCollection, "", false)
	if err != nil {
		log.Println("Error while generating the token: ", err)
		return nil, err
	}

	update := bson.M{"$set": bson.M{"token": token, "isActive": true, "updatedAt": time.Now()}}
	if _, err := db.UpdateOne(c, collection, bson.M{"code": code}, update); err != nil {
		log.Println("Error while updating the token: ", err)
		return nil, err
	}

	delete(userDoc, "password")
	userDoc["token"] = token
	userDoc["isActive"] = true

	if err := redis.SetCache(c, models.UserKey+code, userDoc); err != nil {
		log.Println("Failed caching user: ", err)
	}

	return map[string]interface{}{"token": token, "user": userDoc}, nil
}

/*
* Clear the stored token and mark the account inactive
 */
func Logout(c *gin.Context) (string, error) {
	_, code, err := getViewer(c)
	if err != nil {
		log.Println("Error from getViewer: ", err)
		return "", err
	}

	collection := db.OpenCollections(models.UserCollection)
	update := bson.M{"$set": bson.M{"token": "", "isActive": false, "updatedAt": time.Now()}}
	if _, err := db.UpdateOne(c, collection, bson.M{"code": code}, update); err != nil {
		log.Println("Error while clearing the token: ", err)
		return "", err
	}
	if err := redis.DeleteCache(c, models.UserKey+code); err != nil {
		log.Println("Failed clearing cached user: ", err)
	}
	return "Logged out successfully", nil
}
